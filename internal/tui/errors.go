// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-rx-api/internal/service"
)

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrOffline):
		return "Отсутствует сеть или сервер недоступен"
	case errors.Is(err, service.ErrSessionExpired):
		return "Сессия истекла, требуется авторизация"
	case errors.Is(err, service.ErrUserNotFound):
		return "Пользователь не найден"
	case errors.Is(err, service.ErrNoUserIDs):
		return "Не заданы id пользователей"
	}
	return err.Error()
}
