package dal

func (s *BoltDBTestSuite) TestBoltDB_Subscribe_Idempotent() {
	s.Require().NoError(s.store.Subscribe(1))
	s.Require().NoError(s.store.RecordNotification(1, 100, 3500))

	// second subscribe must not reset existing progress
	s.Require().NoError(s.store.Subscribe(1))

	subs, err := s.store.GetAllSubscribers()
	s.Require().NoError(err)
	s.Require().Len(subs, 1)
	s.Equal(Progress{100: 3500}, subs[0].Progress)

	count, err := s.store.CountSubscribers()
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *BoltDBTestSuite) TestBoltDB_Unsubscribe_AbsentIsNoop() {
	s.Require().NoError(s.store.Subscribe(1))

	s.Require().NoError(s.store.Unsubscribe(2))

	count, err := s.store.CountSubscribers()
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *BoltDBTestSuite) TestBoltDB_Unsubscribe_RemovesProgress() {
	s.Require().NoError(s.store.Subscribe(1))
	s.Require().NoError(s.store.RecordNotification(1, 100, 3500))

	s.Require().NoError(s.store.Unsubscribe(1))

	subs, err := s.store.GetAllSubscribers()
	s.Require().NoError(err)
	s.Empty(subs)

	// resubscribing starts from a clean slate
	s.Require().NoError(s.store.Subscribe(1))
	subs, err = s.store.GetAllSubscribers()
	s.Require().NoError(err)
	s.Require().Len(subs, 1)
	s.Empty(subs[0].Progress)
}

func (s *BoltDBTestSuite) TestBoltDB_RecordNotification_Union() {
	s.Require().NoError(s.store.Subscribe(1))

	s.Require().NoError(s.store.RecordNotification(1, 100, 86300))
	s.Require().NoError(s.store.RecordNotification(1, 200, 3500))

	subs, err := s.store.GetAllSubscribers()
	s.Require().NoError(err)
	s.Require().Len(subs, 1)
	s.Equal(Progress{100: 86300, 200: 3500}, subs[0].Progress)
}

func (s *BoltDBTestSuite) TestBoltDB_RecordNotification_MonotonicMinimum() {
	s.Require().NoError(s.store.Subscribe(1))

	s.Require().NoError(s.store.RecordNotification(1, 100, 850))
	// a late-arriving coarser value must not win
	s.Require().NoError(s.store.RecordNotification(1, 100, 3500))

	subs, err := s.store.GetAllSubscribers()
	s.Require().NoError(err)
	s.Require().Len(subs, 1)
	s.Equal(Progress{100: 850}, subs[0].Progress)
}

func (s *BoltDBTestSuite) TestBoltDB_RecordNotification_AbsentSubscriber() {
	s.Require().NoError(s.store.RecordNotification(42, 100, 3500))

	count, err := s.store.CountSubscribers()
	s.Require().NoError(err)
	s.Equal(0, count, "recording must not resurrect an unsubscribed chat")
}

func (s *BoltDBTestSuite) TestBoltDB_MigrateSubscriber() {
	s.Require().NoError(s.store.Subscribe(1))
	s.Require().NoError(s.store.RecordNotification(1, 1, 100))
	s.Require().NoError(s.store.RecordNotification(1, 2, 50))

	s.Require().NoError(s.store.Subscribe(2))
	s.Require().NoError(s.store.RecordNotification(2, 3, 10))

	migrated, err := s.store.MigrateSubscriber(1, 2)
	s.Require().NoError(err)
	s.True(migrated)

	subs, err := s.store.GetAllSubscribers()
	s.Require().NoError(err)
	s.Require().Len(subs, 1)
	s.Equal(int64(2), subs[0].ChatID)
	s.Equal(Progress{1: 100, 2: 50, 3: 10}, subs[0].Progress)
}

func (s *BoltDBTestSuite) TestBoltDB_MigrateSubscriber_ConflictTakesMinimum() {
	s.Require().NoError(s.store.Subscribe(1))
	s.Require().NoError(s.store.RecordNotification(1, 7, 800))
	s.Require().NoError(s.store.Subscribe(2))
	s.Require().NoError(s.store.RecordNotification(2, 7, 3500))

	migrated, err := s.store.MigrateSubscriber(1, 2)
	s.Require().NoError(err)
	s.True(migrated)

	subs, err := s.store.GetAllSubscribers()
	s.Require().NoError(err)
	s.Require().Len(subs, 1)
	s.Equal(Progress{7: 800}, subs[0].Progress)
}

func (s *BoltDBTestSuite) TestBoltDB_MigrateSubscriber_AbsentSource() {
	s.Require().NoError(s.store.Subscribe(2))

	migrated, err := s.store.MigrateSubscriber(1, 2)
	s.Require().NoError(err)
	s.False(migrated)

	count, err := s.store.CountSubscribers()
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *BoltDBTestSuite) TestBoltDB_GetAllSubscribers_SkipsMalformed() {
	s.Require().NoError(s.store.Subscribe(1))
	s.Require().NoError(s.store.RecordNotification(1, 100, 3500))
	s.putRaw("2", []byte("not json"))
	s.putRaw("garbage-key", []byte("{}"))

	subs, err := s.store.GetAllSubscribers()
	s.Require().NoError(err)
	s.Require().Len(subs, 2)

	byChat := map[int64]Progress{}
	for _, sub := range subs {
		byChat[sub.ChatID] = sub.Progress
	}
	s.Equal(Progress{100: 3500}, byChat[1])
	s.Empty(byChat[2], "malformed record reads as no data")
}
