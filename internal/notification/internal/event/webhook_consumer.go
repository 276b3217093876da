// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// defaultContentLimit 企业微信机器人文本消息的上限
const defaultContentLimit = 2048

type Text struct {
	Content string `json:"content"`
}

type WebhookMessage struct {
	MsgType string `json:"msgtype"`
	Text    Text   `json:"text"`
}

type HTTPPOSTFunc func(url, contentType string, body io.Reader) (resp *http.Response, err error)

type WebhookConfig struct {
	// Webhooks 通知类型到 webhook 地址
	Webhooks     map[string]string `yaml:"webhooks"`
	ContentLimit int               `yaml:"contentLimit"`
}

// WebhookPushConsumer 把通知推送到配置好的 webhook
type WebhookPushConsumer struct {
	consumer mq.Consumer
	config   *WebhookConfig
	post     HTTPPOSTFunc
	logger   *elog.Component
}

func NewWebhookPushConsumer(q mq.MQ, config *WebhookConfig) (*WebhookPushConsumer, error) {
	groupID := "notification.webhook"
	consumer, err := q.Consumer(NotificationEventName, groupID)
	if err != nil {
		return nil, err
	}
	if config.ContentLimit <= 0 {
		config.ContentLimit = defaultContentLimit
	}
	return &WebhookPushConsumer{
		consumer: consumer,
		config:   config,
		post:     http.Post,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.webhook.consumer")),
	}, nil
}

func (c *WebhookPushConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("推送通知失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *WebhookPushConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt NotificationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	webhookURL, ok := c.webhookOf(evt.Type)
	if !ok {
		c.logger.Error("未知通知类型", elog.Any("event", evt))
		return errors.New("未知通知类型")
	}
	// 配置为空表示不推送
	if webhookURL == "" {
		return nil
	}
	content := truncate(fmt.Sprintf("%s\n%s", evt.Message, evt.Link), c.config.ContentLimit)
	data, err := json.Marshal(&WebhookMessage{MsgType: "text", Text: Text{Content: content}})
	if err != nil {
		return fmt.Errorf("序列化 webhook 消息失败: %w", err)
	}
	resp, err := c.post(webhookURL, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("发送 webhook 请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook 处理请求失败: %s", http.StatusText(resp.StatusCode))
	}
	return nil
}

// webhookOf 配置中心可能把 key 转成小写
func (c *WebhookPushConsumer) webhookOf(typ string) (string, bool) {
	if url, ok := c.config.Webhooks[typ]; ok {
		return url, true
	}
	url, ok := c.config.Webhooks[strings.ToLower(typ)]
	return url, ok
}
