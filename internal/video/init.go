package video

import (
	"sync"

	"github.com/ecodeclub/netflex/internal/video/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.VideoDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMVideoDAO(db)
}
