// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import "context"

// MessagePublisher publishes authoring events for downstream consumers
// (e.g. the migration workers caching policies)
type MessagePublisher interface {
	// Policy publishes a policy change message on subject
	Policy(ctx context.Context, subject string, message any) error
}
