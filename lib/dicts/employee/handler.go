package employeeprovider

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"it-requests-backend/db"
	"it-requests-backend/lib/dicts/dictcache"
	"it-requests-backend/lib/dicts/employee/store"
	authutils "it-requests-backend/lib/utils/auth-utils"
	dictapimodels "it-requests-backend/models/api/dict"
	dbmodels "it-requests-backend/models/db"
)

const (
	cacheKeyAll = "dict:employees"
	cacheKeyIT  = "dict:employees_it"
)

type Provider interface {
	Create(request dictapimodels.EmployeeData) (id int, err error)
	Update(id int, request dictapimodels.EmployeeData) error
	Get(id int) (item dictapimodels.EmployeeView, err error)
	GetByUsername(username string) (rec *dbmodels.Employee, err error)
	Find(request dictapimodels.EmployeeFind) (list []dictapimodels.EmployeeView, err error)
	Options(ctx context.Context, itOnly bool) (list []dictapimodels.Option, err error)
	Delete(id int) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: store.NewInstance(db.DB),
		cache: dictcache.Instance,
	}
}

type impl struct {
	store store.Provider
	cache dictcache.Provider
}

func (i impl) Create(request dictapimodels.EmployeeData) (id int, err error) {
	err = request.Validate()
	if err != nil {
		return 0, err
	}
	rec := dbmodels.Employee{
		Username:             strings.ToLower(request.Username),
		FirstName:            request.FirstName,
		LastName:             request.LastName,
		Email:                request.Email,
		Phone:                request.Phone,
		Position:             request.Position,
		DepartmentID:         request.DepartmentID,
		DivisionCompetencyID: request.DivisionCompetencyID,
		SectionCompetencyID:  request.SectionCompetencyID,
		IsAdmin:              request.IsAdmin,
		Enabled:              true,
	}
	if request.Password != "" {
		rec.Password = authutils.GetMD5Hash(request.Password)
	}
	if request.Enabled != nil {
		rec.Enabled = *request.Enabled
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return 0, err
	}
	i.invalidate()
	log.
		WithField("username", rec.Username).
		WithField("rec_id", id).
		Info("employee created")
	return id, nil
}

func (i impl) Update(id int, request dictapimodels.EmployeeData) error {
	updMap := map[string]interface{}{
		"first_name":             request.FirstName,
		"last_name":              request.LastName,
		"email":                  request.Email,
		"phone":                  request.Phone,
		"position":               request.Position,
		"department_id":          request.DepartmentID,
		"division_competency_id": request.DivisionCompetencyID,
		"section_competency_id":  request.SectionCompetencyID,
		"is_admin":               request.IsAdmin,
	}
	if request.Password != "" {
		updMap["password"] = authutils.GetMD5Hash(request.Password)
	}
	if request.Enabled != nil {
		updMap["enabled"] = *request.Enabled
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	i.invalidate()
	log.WithField("rec_id", id).Info("employee updated")
	return nil
}

func (i impl) Get(id int) (item dictapimodels.EmployeeView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return dictapimodels.EmployeeView{}, errors.New("employee not found")
	}
	return dictapimodels.EmployeeConvert(*rec), nil
}

func (i impl) GetByUsername(username string) (*dbmodels.Employee, error) {
	return i.store.GetByUsername(strings.ToLower(username))
}

func (i impl) Find(request dictapimodels.EmployeeFind) (list []dictapimodels.EmployeeView, err error) {
	recList, err := i.store.Find(strings.ToLower(request.Name), request.DepartmentID, request.ITOnly)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.EmployeeConvert(rec))
	}
	return list, nil
}

func (i impl) Options(ctx context.Context, itOnly bool) (list []dictapimodels.Option, err error) {
	key := cacheKeyAll
	if itOnly {
		key = cacheKeyIT
	}
	if cached, ok := i.cache.GetOptions(ctx, key); ok {
		return cached, nil
	}
	recList, err := i.store.Find("", 0, itOnly)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.Option, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.Option{ID: rec.ID, Name: rec.FullName()})
	}
	i.cache.SetOptions(ctx, key, list)
	return list, nil
}

func (i impl) Delete(id int) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	i.invalidate()
	log.WithField("rec_id", id).Info("employee deleted")
	return nil
}

func (i impl) invalidate() {
	ctx := context.Background()
	i.cache.Invalidate(ctx, cacheKeyAll)
	i.cache.Invalidate(ctx, cacheKeyIT)
}
