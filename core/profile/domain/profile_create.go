// Copyright 2025 Nhat-Nguyen Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"context"
	"errors"
	"log/slog"
)

// CreateProfile validates and persists a new profile. There is deliberately
// no uniqueness pre-check here: the store's unique index on the subject
// identifier decides creation races atomically.
func (app *Application) CreateProfile(ctx context.Context, np *NewProfile) (*Profile, error) {
	if err := validateNewProfile(np); err != nil {
		slog.DebugContext(ctx, "profile validation failed", slog.Any("error", err))
		return nil, err
	}

	created, err := app.writer.Create(ctx, np)
	if err == nil {
		slog.DebugContext(ctx, "created profile", slog.String("id", created.ID))
		return created, nil
	}
	if errors.Is(err, ErrDuplicateProfile) {
		slog.DebugContext(ctx, "duplicate subject", slog.String("userId", np.UserID))
		return nil, ErrDuplicateProfile
	}

	slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
	return nil, ErrUnhandled
}
