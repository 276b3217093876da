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

package ioc

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/netflex/internal/notification"
	"github.com/ecodeclub/netflex/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitUserModule(db *egorm.Component) *user.Module {
	type Config struct {
		Admins []string `yaml:"admins"`
	}
	var cfg Config
	err := econf.UnmarshalKey("user", &cfg)
	if err != nil {
		panic(err)
	}
	return user.InitModule(db, cfg.Admins)
}

func InitNotificationModule(db *egorm.Component, q mq.MQ) (*notification.Module, error) {
	var webhookCfg notification.WebhookConfig
	err := econf.UnmarshalKey("notification", &webhookCfg)
	if err != nil {
		return nil, err
	}
	var purgeCfg notification.PurgeConfig
	err = econf.UnmarshalKey("notification", &purgeCfg)
	if err != nil {
		return nil, err
	}
	return notification.InitModule(db, q, &webhookCfg, purgeCfg)
}
