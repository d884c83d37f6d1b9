package datastores

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// uuid32 is [uuid.UUID] but uses lowercase [base32] for its text form,
// which keeps ids short and safe in a path segment.
type uuid32 struct{ uuid.UUID }

var uuid32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding) //nolint: gochecknoglobals,nolintlint

func (id *uuid32) initV7() *uuid32 { id.UUID = uuid.Must(uuid.NewV7()); return id }

func (id *uuid32) String() string {
	return strings.ToLower(uuid32Encoding.EncodeToString(id.UUID[:]))
}

func newContactID() ContactID { return ContactID(new(uuid32).initV7().String()) }
