// Package service contains the business logic.
//
// It sits between the store facade and the repository layer.
// It receives primitive arguments, performs password hashing and
// verification, calls repository methods, and logs each call.
package service

import (
	"context"
	"time"

	"github.com/jasimjamil/course-feedbig-system/internal/errs"
	"github.com/jasimjamil/course-feedbig-system/internal/logger"
	"github.com/rs/zerolog"
)

// observer logs the outcome of one store call.
type observer struct {
	log           *zerolog.Logger
	slowThreshold time.Duration
}

// done logs op with its duration. Calls over the slow threshold are warned
// about; UNAVAILABLE and INTERNAL failures are logged as errors and noticed
// on the caller's New Relic transaction.
func (o observer) done(ctx context.Context, op string, start time.Time, err error) {
	elapsed := time.Since(start)

	if err != nil {
		switch errs.KindOf(err) {
		case errs.KindUnavailable, errs.KindInternal:
			o.log.Error().Err(err).Str("operation", op).Dur("duration", elapsed).Msg("store call failed")
			logger.NoticeError(ctx, err)
		default:
			o.log.Debug().Err(err).Str("operation", op).Dur("duration", elapsed).Msg("store call rejected")
		}
		return
	}

	if o.slowThreshold > 0 && elapsed > o.slowThreshold {
		o.log.Warn().Str("operation", op).Dur("duration", elapsed).Msg("slow store call")
		return
	}

	o.log.Debug().Str("operation", op).Dur("duration", elapsed).Msg("store call")
}
