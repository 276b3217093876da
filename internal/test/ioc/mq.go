package testioc

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

// InitMQ 替换用内存实现，方便测试
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		qq := memory.NewMQ()
		for _, topic := range []string{"notification_events"} {
			err := qq.CreateTopic(context.Background(), topic, 1)
			if err != nil {
				panic(err)
			}
		}
		q = qq
	})
	return q
}
