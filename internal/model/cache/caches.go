package cache

import (
	"sync"
	"time"

	"gopkg.in/guregu/null.v3"

	"canvasflow.dev/backend/internal/model"
	"canvasflow.dev/backend/internal/pkg/cache"

	"github.com/redis/go-redis/v9"
)

type Flusher func() error

var (
	Activities *cache.Singular[[]*model.Activity]
	Projects   *cache.Singular[[]*model.Project]

	// TimelineLayouts is keyed by "<mode>:<today>" so stale layouts expire
	// naturally when the day rolls over.
	TimelineLayouts *cache.Set[[]byte]

	LastModifiedTime *cache.Set[time.Time]

	once sync.Once

	SetMap             map[string]Flusher
	SingularFlusherMap map[string]Flusher
)

func Initialize(client *redis.Client) {
	once.Do(func() {
		initializeCaches(client)
	})
}

func Delete(name string, key null.String) error {
	if key.Valid {
		if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	} else {
		if _, ok := SingularFlusherMap[name]; ok {
			if err := SingularFlusherMap[name](); err != nil {
				return err
			}
		} else if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	}
	return nil
}

func initializeCaches(client *redis.Client) {
	SetMap = make(map[string]Flusher)
	SingularFlusherMap = make(map[string]Flusher)

	// activity
	Activities = cache.NewSingular[[]*model.Activity]("activities")
	SingularFlusherMap["activities"] = Activities.Flush

	// project
	Projects = cache.NewSingular[[]*model.Project]("projects")
	SingularFlusherMap["projects"] = Projects.Flush

	// timeline
	TimelineLayouts = cache.NewSet[[]byte](client, "timelineLayout")
	SetMap["timelineLayout"] = TimelineLayouts.Flush

	LastModifiedTime = cache.NewSet[time.Time](client, "lastModifiedTime")
	SetMap["lastModifiedTime"] = LastModifiedTime.Flush
}
