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

// DeleteProfile removes the profile immediately. There is no soft delete in
// this contract; a deleted profile is gone from the API's perspective.
func (app *Application) DeleteProfile(ctx context.Context, id string) error {
	if id == "" {
		return ErrProfileNotFound
	}
	err := app.writer.Delete(ctx, id)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrProfileNotFound) {
		return ErrProfileNotFound
	}
	slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
	return ErrUnhandled
}
