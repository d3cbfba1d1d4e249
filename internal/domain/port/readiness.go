// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import "context"

// ReadinessChecker reports whether a backing dependency can serve requests
type ReadinessChecker interface {
	IsReady(ctx context.Context) error
}
