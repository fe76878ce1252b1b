package response

const (
	CodeSuccess      = 2000
	CodeParamInvalid = 4000

	CodeNotOwner        = 4031 // card belongs to someone else
	CodeUserNotFound    = 4041
	CodeCardNotFound    = 4042
	CodeRequestNotFound = 4043
	CodeUserExists      = 4091
	CodeRequestExists   = 4092 // duplicate friend request, absorbed
	CodeSameKind        = 4221 // friend requests are cross-kind only
	CodeVetOwnedCard    = 4222
	CodeUploadFailed    = 5021
)

// message
var msg = map[int]string{
	CodeSuccess:      "success",
	CodeParamInvalid: "invalid request data",

	CodeNotOwner:        "card does not belong to this user",
	CodeUserNotFound:    "user not found",
	CodeCardNotFound:    "card not found",
	CodeRequestNotFound: "friend request not found",
	CodeUserExists:      "user already exists",
	CodeRequestExists:   "friend request already sent",
	CodeSameKind:        "friend requests must pair a regular user with a veterinarian",
	CodeVetOwnedCard:    "veterinarians cannot publish cards",
	CodeUploadFailed:    "image upload failed",
}

func Msg(code int) string {
	if m, ok := msg[code]; ok {
		return m
	}
	return "unknown error"
}

// Error builds the standard error body carried by non-2xx responses.
func Error(code int) map[string]interface{} {
	return map[string]interface{}{"code": code, "error": Msg(code)}
}
