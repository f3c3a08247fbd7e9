package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// scalar decodes an identifier the remote service may send as a JSON string,
// number or boolean. Numbers keep their literal text; null decodes as "".
// Objects and arrays are rejected.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty identifier")
	}

	switch c := data[0]; {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case c == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = scalar(v)
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*s = scalar(data)
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = scalar(n)
	default:
		return fmt.Errorf("identifier must be a scalar, got %s", data)
	}

	return nil
}

// UnmarshalJSON accepts scalar identifiers in id, user_id and email.
func (p *Person) UnmarshalJSON(data []byte) error {
	type plain Person
	var v struct {
		plain
		ID     scalar `json:"id"`
		UserID scalar `json:"user_id"`
		Email  scalar `json:"email"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*p = Person(v.plain)
	p.ID, p.UserID, p.Email = string(v.ID), string(v.UserID), string(v.Email)
	return nil
}

// UnmarshalJSON accepts scalar identifiers in owner and created_by.
func (p *NotePermissions) UnmarshalJSON(data []byte) error {
	type plain NotePermissions
	var v struct {
		plain
		Owner     scalar `json:"owner"`
		CreatedBy scalar `json:"created_by"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*p = NotePermissions(v.plain)
	p.Owner, p.CreatedBy = string(v.Owner), string(v.CreatedBy)
	return nil
}

// UnmarshalJSON accepts scalar identifiers in id, created_by, owner_id and
// meeting_id, so that a numeric id does not hide an otherwise decidable note.
func (n *NoteRecord) UnmarshalJSON(data []byte) error {
	type plain NoteRecord
	var v struct {
		plain
		ID        scalar `json:"id"`
		CreatedBy scalar `json:"created_by"`
		OwnerID   scalar `json:"owner_id"`
		MeetingID scalar `json:"meeting_id"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*n = NoteRecord(v.plain)
	n.ID, n.CreatedBy, n.OwnerID, n.MeetingID = string(v.ID), string(v.CreatedBy), string(v.OwnerID), string(v.MeetingID)
	return nil
}

// UnmarshalJSON accepts a scalar meeting id.
func (m *MeetingRecord) UnmarshalJSON(data []byte) error {
	type plain MeetingRecord
	var v struct {
		plain
		ID scalar `json:"id"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*m = MeetingRecord(v.plain)
	m.ID = string(v.ID)
	return nil
}
