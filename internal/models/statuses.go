package models

type ProjectStatus string
type ProposalStatus string
type InvitationStatus string
type ConvocatoriaStatus string
type ApplicationStatus string
type PortfolioItemType string
type SocialNetwork string

const (
	ProjectStatusDraft      ProjectStatus = "draft"
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCanceled   ProjectStatus = "canceled"

	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"

	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"

	ConvocatoriaStatusDraft  ConvocatoriaStatus = "draft"
	ConvocatoriaStatusOpen   ConvocatoriaStatus = "open"
	ConvocatoriaStatusClosed ConvocatoriaStatus = "closed"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"

	PortfolioItemTypeImage PortfolioItemType = "image"
	PortfolioItemTypeVideo PortfolioItemType = "video"

	SocialNetworkInstagram SocialNetwork = "instagram"
	SocialNetworkTwitter   SocialNetwork = "twitter"
	SocialNetworkFacebook  SocialNetwork = "facebook"
	SocialNetworkLinkedIn  SocialNetwork = "linkedin"
	SocialNetworkTikTok    SocialNetwork = "tiktok"
	SocialNetworkYouTube   SocialNetwork = "youtube"
	SocialNetworkOther     SocialNetwork = "other"
)
