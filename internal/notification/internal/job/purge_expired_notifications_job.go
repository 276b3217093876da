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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/netflex/internal/notification/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*PurgeExpiredNotificationsJob)(nil)

type PurgeConfig struct {
	RetentionDays int `yaml:"retentionDays"`
	BatchSize     int `yaml:"batchSize"`
}

type PurgeExpiredNotificationsJob struct {
	svc       service.Service
	retention time.Duration
	limit     int
}

func NewPurgeExpiredNotificationsJob(svc service.Service, cfg PurgeConfig) *PurgeExpiredNotificationsJob {
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = 30
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	return &PurgeExpiredNotificationsJob{
		svc:       svc,
		retention: time.Duration(cfg.RetentionDays) * 24 * time.Hour,
		limit:     cfg.BatchSize,
	}
}

func (p *PurgeExpiredNotificationsJob) Name() string {
	return "PurgeExpiredNotificationsJob"
}

func (p *PurgeExpiredNotificationsJob) Run(ctx context.Context) error {
	ctime := time.Now().Add(-p.retention).UnixMilli()
	for {
		cnt, err := p.svc.PurgeBefore(ctx, ctime, p.limit)
		if err != nil {
			return fmt.Errorf("清理过期通知失败: %w", err)
		}
		if cnt < int64(p.limit) {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
