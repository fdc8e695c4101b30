package dal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const launchesBatchKey = "latest"

type (
	Provider struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	Vehicle struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		CompanyID int64  `json:"company_id"`
		Slug      string `json:"slug"`
	}

	Location struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		State     *string `json:"state"`
		StateName *string `json:"state_name"`
		Country   string  `json:"country"`
		Slug      string  `json:"slug"`
	}

	Pad struct {
		ID       int64    `json:"id"`
		Name     string   `json:"name"`
		Location Location `json:"location"`
	}

	Mission struct {
		ID          int64   `json:"id"`
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}

	EstimatedDate struct {
		Month   *int `json:"month"`
		Day     *int `json:"day"`
		Year    *int `json:"year"`
		Quarter *int `json:"quarter"`
	}

	Tag struct {
		ID   int64  `json:"id"`
		Text string `json:"text"`
	}

	Launch struct {
		ID                 int64         `json:"id"`
		SortDate           UnixTime      `json:"sort_date"`
		Name               string        `json:"name"`
		Provider           Provider      `json:"provider"`
		Vehicle            Vehicle       `json:"vehicle"`
		Pad                Pad           `json:"pad"`
		Missions           []Mission     `json:"missions"`
		MissionDescription *string       `json:"mission_description"`
		LaunchDescription  string        `json:"launch_description"`
		T0                 *LaunchTime   `json:"t0"`
		EstDate            EstimatedDate `json:"est_date"`
		DateStr            string        `json:"date_str"`
		Tags               []Tag         `json:"tags"`
		Slug               string        `json:"slug"`
		Quicktext          string        `json:"quicktext"`
		Suborbital         bool          `json:"suborbital"`
		WinOpen            *LaunchTime   `json:"win_open"`
		WinClose           *LaunchTime   `json:"win_close"`
		Modified           time.Time     `json:"modified"`
	}
)

// String renders the pad the way notifications display it:
// "Location, Pad[, State], Country".
func (p Pad) String() string {
	var sb strings.Builder
	sb.WriteString(p.Location.Name)
	sb.WriteString(", ")
	sb.WriteString(p.Name)
	if p.Location.StateName != nil {
		sb.WriteString(", ")
		sb.WriteString(*p.Location.StateName)
	}
	sb.WriteString(", ")
	sb.WriteString(p.Location.Country)
	return sb.String()
}

// launchTimeFormat is the feed's minute-precision format for t0, win_open
// and win_close; the trailing Z is a literal.
const launchTimeFormat = "2006-01-02T15:04Z"

// LaunchTime is a nullable feed instant; null is represented by a nil
// *LaunchTime field.
type LaunchTime struct {
	time.Time
}

func NewLaunchTime(t time.Time) *LaunchTime {
	return &LaunchTime{Time: t.UTC().Truncate(time.Minute)}
}

func (t LaunchTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(launchTimeFormat))
}

func (t *LaunchTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("launch time is not a string: %w", err)
	}
	parsed, err := time.Parse(launchTimeFormat, s)
	if err != nil {
		return fmt.Errorf("parse launch time %q: %w", s, err)
	}
	t.Time = parsed.UTC()
	return nil
}

// UnixTime handles the feed's string-encoded unix seconds (sort_date).
type UnixTime struct {
	time.Time
}

func (t UnixTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(t.Unix(), 10))
}

func (t *UnixTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse unix timestamp %q: %w", s, err)
	}
	t.Time = time.Unix(sec, 0).UTC()
	return nil
}

// PutLaunches replaces the stored batch wholesale; batches are never merged.
func (s *BoltDB) PutLaunches(launches []Launch) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(launches)
		if err != nil {
			return fmt.Errorf("marshal launch batch: %w", err)
		}
		return tx.Bucket([]byte(launchesBucket)).Put([]byte(launchesBatchKey), data)
	})
}

// GetLaunches returns the latest stored batch; found is false before the
// first successful fetch.
func (s *BoltDB) GetLaunches() ([]Launch, bool, error) {
	var res []Launch
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(launchesBucket)).Get([]byte(launchesBatchKey))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}
