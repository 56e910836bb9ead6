package statusprovider

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"it-requests-backend/db"
	"it-requests-backend/lib/dicts/dictcache"
	"it-requests-backend/lib/dicts/status/store"
	dictapimodels "it-requests-backend/models/api/dict"
	dbmodels "it-requests-backend/models/db"
)

const (
	cacheKeyAll      = "dict:statuses"
	cacheKeyApproval = "dict:statuses_approval"
)

type Provider interface {
	Create(request dictapimodels.StatusData) (id int, err error)
	Update(id int, request dictapimodels.StatusData) error
	Get(id int) (item dictapimodels.StatusView, err error)
	List(approvalOnly bool) (list []dictapimodels.StatusView, err error)
	Options(ctx context.Context, approvalOnly bool) (list []dictapimodels.Option, err error)
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

func (i impl) Create(request dictapimodels.StatusData) (id int, err error) {
	rec := dbmodels.Status{
		Value:        request.Value,
		Name:         request.Name,
		DisplayOrder: request.DisplayOrder,
		IsApproval:   request.IsApproval,
		Enabled:      true,
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
		WithField("status_name", rec.Name).
		WithField("rec_id", id).
		Info("status created")
	return id, nil
}

func (i impl) Update(id int, request dictapimodels.StatusData) error {
	updMap := map[string]interface{}{
		"name":          request.Name,
		"display_order": request.DisplayOrder,
		"is_approval":   request.IsApproval,
	}
	if request.Enabled != nil {
		updMap["enabled"] = *request.Enabled
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	i.invalidate()
	log.WithField("rec_id", id).Info("status updated")
	return nil
}

func (i impl) Get(id int) (item dictapimodels.StatusView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.StatusView{}, err
	}
	if rec == nil {
		return dictapimodels.StatusView{}, errors.New("status not found")
	}
	return dictapimodels.StatusConvert(*rec), nil
}

func (i impl) List(approvalOnly bool) (list []dictapimodels.StatusView, err error) {
	recList, err := i.store.List(approvalOnly)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.StatusView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.StatusConvert(rec))
	}
	return list, nil
}

func (i impl) Options(ctx context.Context, approvalOnly bool) (list []dictapimodels.Option, err error) {
	key := cacheKeyAll
	if approvalOnly {
		key = cacheKeyApproval
	}
	if cached, ok := i.cache.GetOptions(ctx, key); ok {
		return cached, nil
	}
	recList, err := i.store.List(approvalOnly)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.Option, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.Option{ID: rec.ID, Name: rec.Name})
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
	log.WithField("rec_id", id).Info("status deleted")
	return nil
}

func (i impl) invalidate() {
	ctx := context.Background()
	i.cache.Invalidate(ctx, cacheKeyAll)
	i.cache.Invalidate(ctx, cacheKeyApproval)
}
