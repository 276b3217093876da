package comment

import (
	"sync"

	"github.com/ecodeclub/netflex/internal/comment/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var once = &sync.Once{}

func initCommentDAO(db *egorm.Component) (dao.CommentDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewCommentGORMDAO(db), nil
}
