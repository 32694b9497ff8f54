package auth

import "github.com/sportvest/sportvest/internal/common"

// Authorize decides whether the caller may act on a resource owned by
// ownerID. callerID is the user id the identity's username resolved to
// ("" when it could not be resolved). Every failing combination collapses
// into ErrNotFoundOrDenied so the response never reveals whether the
// resource exists.
//
// Creation paths do not call Authorize; they set the owner from the
// identity instead.
func Authorize(identity Identity, callerID, ownerID string) error {
	if !identity.IsAuthenticated() {
		return common.ErrNotFoundOrDenied
	}
	if callerID == "" || ownerID == "" || callerID != ownerID {
		return common.ErrNotFoundOrDenied
	}
	return nil
}
