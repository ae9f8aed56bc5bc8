package services

import "contala_backend/internal/email"

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	ProfileService      ProfileService
	ProjectService      ProjectService
	ProposalService     ProposalService
	InvitationService   InvitationService
	MessageService      MessageService
	ConvocatoriaService ConvocatoriaService
	ApplicationService  ApplicationService
	ReviewService       ReviewService
	NotificationService NotificationService
	EmailProvider       email.Provider
}
