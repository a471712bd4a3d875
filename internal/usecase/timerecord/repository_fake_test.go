package timerecord

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/BruksfildServices01/timeclock/internal/audit"
	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/models"
)

// fakeRepo implementa domain.Repository en memoria, replicando las
// garantías del esquema real: como mucho un abierto por usuario y un
// estado por (usuario, día).
type fakeRepo struct {
	users    map[uint]*models.User
	records  map[uint]*models.TimeRecord
	statuses map[string]*models.EmployeeStatus
	nextID   uint

	closeErr error // fuerza el fallo del lote del sweeper
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    make(map[uint]*models.User),
		records:  make(map[uint]*models.TimeRecord),
		statuses: make(map[string]*models.EmployeeStatus),
		nextID:   1,
	}
}

func statusKey(userID uint, day time.Time) string {
	return fmt.Sprintf("%d/%s", userID, day.Format("2006-01-02"))
}

func (f *fakeRepo) addUser(u models.User) *models.User {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = &u
	return f.users[u.ID]
}

func (f *fakeRepo) addRecord(rec models.TimeRecord) *models.TimeRecord {
	rec.ID = f.nextID
	f.nextID++
	cp := rec
	f.records[cp.ID] = &cp
	return f.records[cp.ID]
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GetOpenRecord(_ context.Context, userID uint) (*models.TimeRecord, error) {
	var open *models.TimeRecord
	for _, rec := range f.records {
		if rec.UserID != userID || !rec.IsOpen() {
			continue
		}
		if open == nil || rec.ID > open.ID {
			open = rec
		}
	}
	if open == nil {
		return nil, nil
	}
	cp := *open
	return &cp, nil
}

func (f *fakeRepo) CreateCheckIn(
	ctx context.Context,
	rec *models.TimeRecord,
	status *models.EmployeeStatus,
) error {
	if open, _ := f.GetOpenRecord(ctx, rec.UserID); open != nil {
		return httperr.ErrBusiness("already_open")
	}

	rec.ID = f.nextID
	f.nextID++
	cp := *rec
	f.records[cp.ID] = &cp

	if status != nil {
		key := statusKey(status.UserID, status.Date)
		if _, exists := f.statuses[key]; !exists {
			st := *status
			st.ID = f.nextID
			f.nextID++
			f.statuses[key] = &st
			status.ID = st.ID
		}
	}
	return nil
}

func (f *fakeRepo) GetRecordByID(_ context.Context, id uint) (*models.TimeRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, httperr.ErrBusiness("record_not_found")
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRepo) UpdateRecord(_ context.Context, rec *models.TimeRecord) error {
	stored, ok := f.records[rec.ID]
	if !ok {
		return httperr.ErrBusiness("record_not_found")
	}
	*stored = *rec
	return nil
}

func (f *fakeRepo) DeleteRecord(_ context.Context, id uint) error {
	delete(f.records, id)
	return nil
}

func (f *fakeRepo) ListClosedRecordsBetween(
	_ context.Context,
	userID uint,
	from time.Time,
	to time.Time,
) ([]models.TimeRecord, error) {
	var out []models.TimeRecord
	for _, rec := range f.records {
		if rec.UserID != userID || !rec.IsClosed() {
			continue
		}
		if rec.Date.Before(from) || !rec.Date.Before(to) {
			continue
		}
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) ListOpenRecords(
	_ context.Context,
	filter domain.OpenRecordFilter,
) ([]models.TimeRecord, error) {
	var out []models.TimeRecord
	for _, rec := range f.records {
		if !rec.IsOpen() {
			continue
		}
		if filter.DateBefore != nil && !rec.Date.Before(*filter.DateBefore) {
			continue
		}
		if filter.DateEquals != nil && !rec.Date.Equal(*filter.DateEquals) {
			continue
		}
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) CloseRecords(_ context.Context, recs []models.TimeRecord) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	for i := range recs {
		stored, ok := f.records[recs[i].ID]
		if !ok {
			return httperr.ErrBusiness("record_not_found")
		}
		*stored = recs[i]
	}
	return nil
}

func (f *fakeRepo) GetStatusForDay(
	_ context.Context,
	userID uint,
	day time.Time,
) (*models.EmployeeStatus, error) {
	st, ok := f.statuses[statusKey(userID, day)]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

func (f *fakeRepo) UpsertStatus(_ context.Context, st *models.EmployeeStatus) error {
	key := statusKey(st.UserID, st.Date)
	if existing, ok := f.statuses[key]; ok {
		existing.Status = st.Status
		existing.Notes = st.Notes
		st.ID = existing.ID
		return nil
	}
	cp := *st
	cp.ID = f.nextID
	f.nextID++
	f.statuses[key] = &cp
	st.ID = cp.ID
	return nil
}

// recordingAudit captura eventos para poder afirmarlos en tests.
type recordingAudit struct {
	events []audit.Event
}

func (r *recordingAudit) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}
