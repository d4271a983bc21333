package services

import "log"

type NotificationEvent string

const (
	EventProposalCreated       NotificationEvent = "proposal_created"
	EventProposalStatusChanged NotificationEvent = "proposal_status_changed"
	EventProposalDeclined      NotificationEvent = "proposal_declined"
	EventProposalMoved         NotificationEvent = "proposal_moved"
	EventContractInvited       NotificationEvent = "contract_invited"
	EventContractSigned        NotificationEvent = "contract_signed"
	EventJobAgenciesChanged    NotificationEvent = "job_agencies_changed"
	EventInterviewScheduled    NotificationEvent = "interview_scheduled"
)

// NotificationSink receives fire-and-forget events after a mutation commits.
// Delivery failures never roll the mutation back; the core does not inspect
// the result.
type NotificationSink interface {
	Send(recipientID uint, event NotificationEvent, actorID uint, target string, context map[string]string)
}

// LogNotificationSink is the default sink: it just logs. Real delivery
// (email, in-app) lives outside this core.
type LogNotificationSink struct{}

func NewLogNotificationSink() *LogNotificationSink {
	return &LogNotificationSink{}
}

func (sink *LogNotificationSink) Send(recipientID uint, event NotificationEvent, actorID uint, target string, context map[string]string) {
	log.Printf("notify user=%d event=%s actor=%d target=%s context=%v", recipientID, event, actorID, target, context)
}
