package employee

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type Employee struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Department  DepartmentRef  `json:"department"`
	Designation DesignationRef `json:"designation"`
	JoinDate    string         `json:"join_date"`
}

// DepartmentRef is either a bare identifier or an expanded object, depending
// on whether the listing was requested with expand=department.
type DepartmentRef struct {
	ID       int64
	Name     string
	Expanded bool
}

// DesignationRef mirrors DepartmentRef for the designation relation.
type DesignationRef struct {
	ID       int64
	Title    string
	Expanded bool
}

func (r *DepartmentRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*r = DepartmentRef{}
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = DepartmentRef{ID: obj.ID, Name: obj.Name, Expanded: true}
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*r = DepartmentRef{ID: id}
	return nil
}

func (r DepartmentRef) MarshalJSON() ([]byte, error) {
	if r.ID == 0 && !r.Expanded {
		return []byte("null"), nil
	}
	if !r.Expanded {
		return json.Marshal(r.ID)
	}
	return json.Marshal(struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}{r.ID, r.Name})
}

// Label returns the display value for listings: the expanded name when
// available, otherwise the bare identifier notation the listing shows.
func (r DepartmentRef) Label() string {
	if r.ID == 0 && !r.Expanded {
		return "-"
	}
	if r.Expanded {
		return r.Name
	}
	return "ID: " + itoa(r.ID)
}

func (r *DesignationRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*r = DesignationRef{}
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			ID    int64  `json:"id"`
			Title string `json:"title"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = DesignationRef{ID: obj.ID, Title: obj.Title, Expanded: true}
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*r = DesignationRef{ID: id}
	return nil
}

func (r DesignationRef) MarshalJSON() ([]byte, error) {
	if r.ID == 0 && !r.Expanded {
		return []byte("null"), nil
	}
	if !r.Expanded {
		return json.Marshal(r.ID)
	}
	return json.Marshal(struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}{r.ID, r.Title})
}

func (r DesignationRef) Label() string {
	if r.ID == 0 && !r.Expanded {
		return "-"
	}
	if r.Expanded {
		return r.Title
	}
	return "ID: " + itoa(r.ID)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
