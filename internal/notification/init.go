package notification

import (
	"sync"

	"github.com/ecodeclub/netflex/internal/notification/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.NotificationDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMNotificationDAO(db)
}
