package dal

import (
	"encoding/json"
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_GetLaunches_Empty() {
	launches, found, err := s.store.GetLaunches()
	s.Require().NoError(err)
	s.False(found)
	s.Empty(launches)
}

func (s *BoltDBTestSuite) TestBoltDB_PutLaunches_ReplacesBatch() {
	first := []Launch{
		{ID: 1, Name: "Starlink Group 6-1", Slug: "starlink-6-1"},
		{ID: 2, Name: "Artemis II", Slug: "artemis-2"},
	}
	s.Require().NoError(s.store.PutLaunches(first))

	second := []Launch{
		{ID: 3, Name: "Electron | Baby Come Back", Slug: "baby-come-back"},
	}
	s.Require().NoError(s.store.PutLaunches(second))

	launches, found, err := s.store.GetLaunches()
	s.Require().NoError(err)
	s.True(found)
	s.Require().Len(launches, 1, "batches are replaced wholesale, not merged")
	s.Equal(int64(3), launches[0].ID)
}

func (s *BoltDBTestSuite) TestBoltDB_PutLaunches_RoundTrip() {
	t0 := NewLaunchTime(time.Date(2026, time.September, 2, 13, 30, 0, 0, time.UTC))
	launch := Launch{
		ID:       42,
		SortDate: UnixTime{Time: time.Unix(1788000000, 0).UTC()},
		Name:     "Falcon 9 | Crew-13",
		Provider: Provider{ID: 1, Name: "SpaceX", Slug: "spacex"},
		Vehicle:  Vehicle{ID: 1, Name: "Falcon 9", CompanyID: 1, Slug: "falcon-9"},
		Pad: Pad{
			ID:   2,
			Name: "LC-39A",
			Location: Location{
				ID:        1,
				Name:      "Kennedy Space Center",
				StateName: strPtr("Florida"),
				Country:   "United States",
				Slug:      "ksc",
			},
		},
		T0:         t0,
		Slug:       "crew-13",
		Suborbital: false,
	}

	s.Require().NoError(s.store.PutLaunches([]Launch{launch}))

	launches, found, err := s.store.GetLaunches()
	s.Require().NoError(err)
	s.True(found)
	s.Require().Len(launches, 1)

	got := launches[0]
	s.Equal(launch.ID, got.ID)
	s.Require().NotNil(got.T0)
	s.Equal(t0.Time, got.T0.Time)
	s.Equal(launch.SortDate.Unix(), got.SortDate.Unix())
	s.Nil(got.WinOpen, "null instants stay nil across the round trip")
}

func (s *BoltDBTestSuite) TestLaunchTime_JSON() {
	var l Launch
	payload := []byte(`{"id":1,"t0":"2026-09-02T13:30Z","win_open":null}`)
	s.Require().NoError(json.Unmarshal(payload, &l))

	s.Require().NotNil(l.T0)
	s.Equal(time.Date(2026, time.September, 2, 13, 30, 0, 0, time.UTC), l.T0.Time)
	s.Nil(l.WinOpen)

	data, err := json.Marshal(l.T0)
	s.Require().NoError(err)
	s.Equal(`"2026-09-02T13:30Z"`, string(data))
}

func (s *BoltDBTestSuite) TestUnixTime_JSON() {
	var u UnixTime
	s.Require().NoError(json.Unmarshal([]byte(`"1788000000"`), &u))
	s.Equal(int64(1788000000), u.Unix())

	// some payloads carry it unquoted
	s.Require().NoError(json.Unmarshal([]byte(`1788000000`), &u))
	s.Equal(int64(1788000000), u.Unix())

	data, err := json.Marshal(u)
	s.Require().NoError(err)
	s.Equal(`"1788000000"`, string(data))
}

func (s *BoltDBTestSuite) TestPad_String() {
	pad := Pad{
		Name: "SLC-40",
		Location: Location{
			Name:      "Cape Canaveral SFS",
			StateName: strPtr("Florida"),
			Country:   "United States",
		},
	}
	s.Equal("Cape Canaveral SFS, SLC-40, Florida, United States", pad.String())

	pad.Location.StateName = nil
	s.Equal("Cape Canaveral SFS, SLC-40, United States", pad.String())
}

func strPtr(s string) *string {
	return &s
}
