package models

import "strings"

// UserRole defines the role a user is created with
type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleHeadOfSales UserRole = "head_of_sales"
	UserRoleSalesAgent  UserRole = "sales_agent"
	UserRoleCustomer    UserRole = "customer"
)

// LeadStatus defines the pipeline stage of a lead
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusProposal    LeadStatus = "proposal"
	LeadStatusNegotiation LeadStatus = "negotiation"
	LeadStatusClosedWon   LeadStatus = "closed_won"
	LeadStatusClosedLost  LeadStatus = "closed_lost"
)

// TaskStatus defines the state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// TaskPriority defines the urgency of a task
type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "low"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityCritical TaskPriority = "critical"
)

// AssignmentType distinguishes the owning agent of a lead from supporting agents
type AssignmentType string

const (
	AssignmentTypePrimary   AssignmentType = "primary"
	AssignmentTypeSecondary AssignmentType = "secondary"
)

// FollowupStatus defines the state of a follow-up
type FollowupStatus string

const (
	FollowupStatusScheduled FollowupStatus = "scheduled"
	FollowupStatusCompleted FollowupStatus = "completed"
	FollowupStatusMissed    FollowupStatus = "missed"
	FollowupStatusCancelled FollowupStatus = "cancelled"
)

// ActionType defines the kind of activity logged against a lead
type ActionType string

const (
	ActionTypeCall    ActionType = "call"
	ActionTypeEmail   ActionType = "email"
	ActionTypeMeeting ActionType = "meeting"
	ActionTypeNote    ActionType = "note"
	ActionTypeDemo    ActionType = "demo"
	ActionTypeOther   ActionType = "other"
)

// CommunicationMethod defines the channel of a lead communication
type CommunicationMethod string

const (
	CommunicationMethodEmail   CommunicationMethod = "email"
	CommunicationMethodPhone   CommunicationMethod = "phone"
	CommunicationMethodSMS     CommunicationMethod = "sms"
	CommunicationMethodMeeting CommunicationMethod = "meeting"
	CommunicationMethodOther   CommunicationMethod = "other"
)

// CommunicationDirection tells whether the lead or the agent initiated contact
type CommunicationDirection string

const (
	CommunicationDirectionInbound  CommunicationDirection = "inbound"
	CommunicationDirectionOutbound CommunicationDirection = "outbound"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleHeadOfSales, UserRoleSalesAgent, UserRoleCustomer:
		return true
	}
	return false
}

// ParseUserRole normalizes s into a UserRole
func ParseUserRole(s string) (UserRole, bool) {
	r := UserRole(normalize(s))
	return r, r.IsValid()
}

// IsValid checks if the LeadStatus is valid
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusProposal,
		LeadStatusNegotiation, LeadStatusClosedWon, LeadStatusClosedLost:
		return true
	}
	return false
}

// IsClosed reports whether the lead has left the pipeline
func (s LeadStatus) IsClosed() bool {
	return s == LeadStatusClosedWon || s == LeadStatusClosedLost
}

// ParseLeadStatus normalizes s into a LeadStatus
func ParseLeadStatus(s string) (LeadStatus, bool) {
	st := LeadStatus(normalize(s))
	return st, st.IsValid()
}

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// ParseTaskStatus normalizes s into a TaskStatus
func ParseTaskStatus(s string) (TaskStatus, bool) {
	st := TaskStatus(normalize(s))
	return st, st.IsValid()
}

// IsValid checks if the TaskPriority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityCritical:
		return true
	}
	return false
}

// ParseTaskPriority normalizes s into a TaskPriority
func ParseTaskPriority(s string) (TaskPriority, bool) {
	p := TaskPriority(normalize(s))
	return p, p.IsValid()
}

// IsValid checks if the AssignmentType is valid
func (a AssignmentType) IsValid() bool {
	return a == AssignmentTypePrimary || a == AssignmentTypeSecondary
}

// ParseAssignmentType normalizes s into an AssignmentType
func ParseAssignmentType(s string) (AssignmentType, bool) {
	a := AssignmentType(normalize(s))
	return a, a.IsValid()
}

// IsValid checks if the FollowupStatus is valid
func (s FollowupStatus) IsValid() bool {
	switch s {
	case FollowupStatusScheduled, FollowupStatusCompleted, FollowupStatusMissed, FollowupStatusCancelled:
		return true
	}
	return false
}

// ParseFollowupStatus normalizes s into a FollowupStatus
func ParseFollowupStatus(s string) (FollowupStatus, bool) {
	st := FollowupStatus(normalize(s))
	return st, st.IsValid()
}

// IsValid checks if the ActionType is valid
func (a ActionType) IsValid() bool {
	switch a {
	case ActionTypeCall, ActionTypeEmail, ActionTypeMeeting, ActionTypeNote, ActionTypeDemo, ActionTypeOther:
		return true
	}
	return false
}

// ParseActionType normalizes s into an ActionType
func ParseActionType(s string) (ActionType, bool) {
	a := ActionType(normalize(s))
	return a, a.IsValid()
}

// IsValid checks if the CommunicationMethod is valid
func (m CommunicationMethod) IsValid() bool {
	switch m {
	case CommunicationMethodEmail, CommunicationMethodPhone, CommunicationMethodSMS,
		CommunicationMethodMeeting, CommunicationMethodOther:
		return true
	}
	return false
}

// ParseCommunicationMethod normalizes s into a CommunicationMethod
func ParseCommunicationMethod(s string) (CommunicationMethod, bool) {
	m := CommunicationMethod(normalize(s))
	return m, m.IsValid()
}

// IsValid checks if the CommunicationDirection is valid
func (d CommunicationDirection) IsValid() bool {
	return d == CommunicationDirectionInbound || d == CommunicationDirectionOutbound
}

// ParseCommunicationDirection normalizes s into a CommunicationDirection
func ParseCommunicationDirection(s string) (CommunicationDirection, bool) {
	d := CommunicationDirection(normalize(s))
	return d, d.IsValid()
}
