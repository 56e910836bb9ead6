package topicprovider

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"it-requests-backend/db"
	"it-requests-backend/lib/dicts/dictcache"
	"it-requests-backend/lib/dicts/topic/store"
	dictapimodels "it-requests-backend/models/api/dict"
	dbmodels "it-requests-backend/models/db"
)

const cacheKeyTopics = "dict:topics"

func subCacheKey(topicID int) string {
	return fmt.Sprintf("dict:subtopics:%v", topicID)
}

type Provider interface {
	Create(request dictapimodels.TopicData) (id int, err error)
	Update(id int, request dictapimodels.TopicData) error
	Get(id int) (item dictapimodels.TopicView, err error)
	List() (list []dictapimodels.TopicView, err error)
	Options(ctx context.Context) (list []dictapimodels.Option, err error)
	Delete(id int) error

	CreateSub(request dictapimodels.SubTopicData) (id int, err error)
	UpdateSub(id int, request dictapimodels.SubTopicData) error
	ListSub(topicID int) (list []dictapimodels.SubTopicView, err error)
	SubOptions(ctx context.Context, topicID int) (list []dictapimodels.Option, err error)
	DeleteSub(id int) error
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

func (i impl) Create(request dictapimodels.TopicData) (id int, err error) {
	rec := dbmodels.Topic{
		Name:    request.Name,
		Enabled: true,
	}
	if request.Enabled != nil {
		rec.Enabled = *request.Enabled
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return 0, err
	}
	i.cache.Invalidate(context.Background(), cacheKeyTopics)
	log.
		WithField("topic_name", rec.Name).
		WithField("rec_id", id).
		Info("topic created")
	return id, nil
}

func (i impl) Update(id int, request dictapimodels.TopicData) error {
	updMap := map[string]interface{}{
		"name": request.Name,
	}
	if request.Enabled != nil {
		updMap["enabled"] = *request.Enabled
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	i.cache.Invalidate(context.Background(), cacheKeyTopics)
	log.WithField("rec_id", id).Info("topic updated")
	return nil
}

func (i impl) Get(id int) (item dictapimodels.TopicView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.TopicView{}, err
	}
	if rec == nil {
		return dictapimodels.TopicView{}, errors.New("topic not found")
	}
	return dictapimodels.TopicConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.TopicView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.TopicView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.TopicConvert(rec))
	}
	return list, nil
}

func (i impl) Options(ctx context.Context) (list []dictapimodels.Option, err error) {
	if cached, ok := i.cache.GetOptions(ctx, cacheKeyTopics); ok {
		return cached, nil
	}
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.Option, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.Option{ID: rec.ID, Name: rec.Name})
	}
	i.cache.SetOptions(ctx, cacheKeyTopics, list)
	return list, nil
}

func (i impl) Delete(id int) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	i.cache.Invalidate(context.Background(), cacheKeyTopics)
	log.WithField("rec_id", id).Info("topic deleted")
	return nil
}

func (i impl) CreateSub(request dictapimodels.SubTopicData) (id int, err error) {
	topicRec, err := i.store.GetByID(request.TopicID)
	if err != nil {
		return 0, err
	}
	if topicRec == nil {
		return 0, errors.New("topic not found")
	}
	rec := dbmodels.SubTopic{
		TopicID: request.TopicID,
		Name:    request.Name,
		Enabled: true,
	}
	if request.Enabled != nil {
		rec.Enabled = *request.Enabled
	}
	id, err = i.store.CreateSub(rec)
	if err != nil {
		return 0, err
	}
	i.cache.Invalidate(context.Background(), subCacheKey(request.TopicID))
	log.
		WithField("subtopic_name", rec.Name).
		WithField("rec_id", id).
		Info("subtopic created")
	return id, nil
}

func (i impl) UpdateSub(id int, request dictapimodels.SubTopicData) error {
	updMap := map[string]interface{}{
		"name": request.Name,
	}
	if request.Enabled != nil {
		updMap["enabled"] = *request.Enabled
	}
	err := i.store.UpdateSub(id, updMap)
	if err != nil {
		return err
	}
	i.cache.Invalidate(context.Background(), subCacheKey(request.TopicID))
	log.WithField("rec_id", id).Info("subtopic updated")
	return nil
}

func (i impl) ListSub(topicID int) (list []dictapimodels.SubTopicView, err error) {
	recList, err := i.store.ListSub(topicID)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.SubTopicView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.SubTopicConvert(rec))
	}
	return list, nil
}

func (i impl) SubOptions(ctx context.Context, topicID int) (list []dictapimodels.Option, err error) {
	key := subCacheKey(topicID)
	if cached, ok := i.cache.GetOptions(ctx, key); ok {
		return cached, nil
	}
	recList, err := i.store.ListSub(topicID)
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

func (i impl) DeleteSub(id int) error {
	rec, err := i.store.GetSubByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	err = i.store.DeleteSub(id)
	if err != nil {
		return err
	}
	i.cache.Invalidate(context.Background(), subCacheKey(rec.TopicID))
	log.WithField("rec_id", id).Info("subtopic deleted")
	return nil
}
