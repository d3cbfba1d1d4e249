// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	stderrors "errors"

	"github.com/linuxfoundation/lfx-v2-authoring-service/pkg/errors"
)

// Error codes carried in ResolveReply.Code
const (
	ReplyCodeValidation  = "validation"
	ReplyCodeNotFound    = "not_found"
	ReplyCodeUnavailable = "unavailable"
	ReplyCodeUnexpected  = "unexpected"
)

// ReplyCode classifies err for the wire. Untyped errors are unexpected.
func ReplyCode(err error) string {
	var (
		validation  errors.Validation
		notFound    errors.NotFound
		unavailable errors.ServiceUnavailable
	)
	switch {
	case stderrors.As(err, &validation):
		return ReplyCodeValidation
	case stderrors.As(err, &notFound):
		return ReplyCodeNotFound
	case stderrors.As(err, &unavailable):
		return ReplyCodeUnavailable
	default:
		return ReplyCodeUnexpected
	}
}

// replyError rebuilds the typed error described by an error reply
func replyError(reply ResolveReply) error {
	switch reply.Code {
	case ReplyCodeValidation:
		return errors.NewValidation(reply.Error)
	case ReplyCodeNotFound:
		return errors.NewNotFound(reply.Error)
	case ReplyCodeUnavailable:
		return errors.NewServiceUnavailable(reply.Error)
	default:
		return errors.NewUnexpected(reply.Error)
	}
}
