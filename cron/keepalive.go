// Package cron runs the periodic upstream keepalive probe.
package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"voxcal/config"
	"voxcal/database"
	"voxcal/directory/calendar"
	"voxcal/directory/contact"
	"voxcal/utils"
)

// StartKeepalive probes the external directories on the configured schedule
// and publishes the results to the health snapshot. A failing probe is
// logged but changes no behavior; reads already fail open and writes
// already apologize.
func StartKeepalive(cal calendar.Directory, con contact.Directory) (*cron.Cron, error) {
	logger := utils.GetLogger()

	c := cron.New()
	_, err := c.AddFunc(config.AppConfig.KeepaliveSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		status := utils.HealthStatus{}

		if err := cal.Ping(ctx); err != nil {
			logger.Warn("Calendar directory unreachable", zap.Error(err))
		} else {
			status.Calendar = true
		}
		if err := con.Ping(ctx); err != nil {
			logger.Warn("Contact directory unreachable", zap.Error(err))
		} else {
			status.Contacts = true
		}
		if database.MongoClient != nil {
			status.Mongo = database.MongoClient.Ping(ctx, nil) == nil
		}
		if cache := utils.CacheClient; cache != nil {
			status.Redis = cache.Ping(ctx).Err() == nil
		}

		utils.SetHealthStatus(status)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logger.Sugar().Infof("Keepalive probe scheduled (%s)", config.AppConfig.KeepaliveSchedule)
	return c, nil
}
