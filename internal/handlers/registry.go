package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	ProfileHandler      *ProfileHandler
	ProjectHandler      *ProjectHandler
	ProposalHandler     *ProposalHandler
	InvitationHandler   *InvitationHandler
	MessageHandler      *MessageHandler
	ConvocatoriaHandler *ConvocatoriaHandler
	ApplicationHandler  *ApplicationHandler
	ReviewHandler       *ReviewHandler
	NotificationHandler *NotificationHandler
}
