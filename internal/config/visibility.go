package config

// Entity names used as visibility-policy keys.
const (
	EntityLostReports = "lost_reports"
	EntityFeedback    = "feedback"
	EntityComplaints  = "complaints"
	EntityJourneys    = "journeys"
	EntityPayments    = "payments"
)

// AdminSeesAll records, per owner-scoped entity, whether admin callers
// may list every row or only their own. Journeys and payments stay
// private even from admins; that asymmetry is deliberate and must not
// be collapsed into a blanket admin override.
var AdminSeesAll = map[string]bool{
	EntityLostReports: true,
	EntityFeedback:    true,
	EntityComplaints:  true,
	EntityJourneys:    false,
	EntityPayments:    false,
}
