// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Murat Karaca

package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
// Header parsing errors beyond that come from [utils.ParseBearerToken].
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
