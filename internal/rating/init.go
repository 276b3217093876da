package rating

import (
	"sync"

	"github.com/ecodeclub/netflex/internal/rating/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.RatingDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMRatingDAO(db)
}
