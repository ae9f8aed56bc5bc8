package apperrors

import "net/http"

// Factories and predefined variables for recurring domain errors.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrIncorrectPassword = New(
	CodeValidationFailed,
	"auth",
	"Current password is incorrect",
	http.StatusBadRequest,
)

// --- Projects & proposals ---

var ErrOnlyCreatorsCanPropose = New(
	CodeForbidden,
	"proposal",
	"Only creators can submit proposals",
	http.StatusForbidden,
)

var ErrProjectNotOpenToCreator = New(
	CodeForbidden,
	"proposal",
	"Project is not public and you have not been invited",
	http.StatusForbidden,
)

var ErrOnlyClientCanDecide = New(
	CodeForbidden,
	"proposal",
	"Only the project client can accept or reject",
	http.StatusForbidden,
)

var ErrOnlyProjectOwnerCanInvite = New(
	CodeForbidden,
	"invitation",
	"Only the project owner can send invitations",
	http.StatusForbidden,
)

var ErrOnlyInvitedCreatorCanDecide = New(
	CodeForbidden,
	"invitation",
	"Only the invited creator can accept or reject",
	http.StatusForbidden,
)

// --- Convocatorias ---

var ErrOnlyCreatorsCanApply = New(
	CodeForbidden,
	"convocatoria",
	"Only creators can apply to convocatorias",
	http.StatusForbidden,
)

var ErrConvocatoriaNotOpen = New(
	CodeValidationFailed,
	"convocatoria",
	"Applications are only accepted while the convocatoria is open",
	http.StatusBadRequest,
)

var ErrOnlyConvocatoriaOwnerCanDecide = New(
	CodeForbidden,
	"convocatoria",
	"Only the convocatoria client can manage applications",
	http.StatusForbidden,
)

// --- Messaging & reviews ---

var ErrOnlyReceiverCanMarkRead = New(
	CodeForbidden,
	"message",
	"Only the receiver can mark a message as read",
	http.StatusForbidden,
)

var ErrOnlyClientsCanReview = New(
	CodeForbidden,
	"review",
	"Only clients can create reviews",
	http.StatusForbidden,
)

var ErrInvalidReviewRating = New(
	CodeValidationFailed,
	"review",
	"Rating must be between 1 and 5",
	http.StatusBadRequest,
)

// --- Profiles ---

var ErrNoCreatorProfile = New(
	CodeValidationFailed,
	"profile",
	"User does not have a creator profile",
	http.StatusBadRequest,
)
