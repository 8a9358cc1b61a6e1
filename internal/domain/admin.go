package domain

// StatsResponse aggregates counts for the admin dashboard.
// @Description Aggregate counts across the service.
type StatsResponse struct {
	Users          int64 `json:"users" example:"120"`
	PremiumMembers int64 `json:"premium_members" example:"18"`
	Assessments    int64 `json:"assessments" example:"97"`
	JournalEntries int64 `json:"journal_entries" example:"640"`
	ChatMessages   int64 `json:"chat_messages" example:"2200"`
}
