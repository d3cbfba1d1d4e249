// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ResolveRequest asks for the author to record for a contributor under a policy.
// Identity, when set, is a "Name <email>" string used instead of Name and Email.
type ResolveRequest struct {
	Policy   string `json:"policy" msgpack:"policy"`
	Name     string `json:"name,omitempty" msgpack:"name,omitempty"`
	Email    string `json:"email,omitempty" msgpack:"email,omitempty"`
	Identity string `json:"identity,omitempty" msgpack:"identity,omitempty"`
}

// ResolveReply carries either the resolved author or an error message.
// Code classifies the error, see ReplyCode.
type ResolveReply struct {
	Name  string `json:"name,omitempty" msgpack:"name,omitempty"`
	Email string `json:"email,omitempty" msgpack:"email,omitempty"`
	Error string `json:"error,omitempty" msgpack:"error,omitempty"`
	Code  string `json:"code,omitempty" msgpack:"code,omitempty"`
}

// wireFormat is the encoding of a resolve exchange. Replies use the request's format.
type wireFormat int

const (
	formatMsgpack wireFormat = iota
	formatJSON
)

func (f wireFormat) String() string {
	if f == formatJSON {
		return "json"
	}
	return "msgpack"
}

// detectFormat treats payloads opening with '{' as JSON and everything else as msgpack
func detectFormat(data []byte) wireFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return formatJSON
	}
	return formatMsgpack
}

func unmarshal(data []byte, format wireFormat, into any) error {
	if format == formatJSON {
		return json.Unmarshal(data, into)
	}
	return msgpack.Unmarshal(data, into)
}

func marshal(format wireFormat, v any) ([]byte, error) {
	if format == formatJSON {
		return json.Marshal(v)
	}
	return msgpack.Marshal(v)
}

// decodeResolveRequest decodes a request in whichever format it was sent
func decodeResolveRequest(data []byte) (ResolveRequest, wireFormat, error) {
	var req ResolveRequest
	if len(data) == 0 {
		return req, formatMsgpack, fmt.Errorf("empty resolve request")
	}
	format := detectFormat(data)
	if err := unmarshal(data, format, &req); err != nil {
		return req, format, fmt.Errorf("invalid %s resolve request: %w", format, err)
	}
	return req, format, nil
}

func encodeResolveReply(reply ResolveReply, format wireFormat) ([]byte, error) {
	return marshal(format, reply)
}

// EncodeResolveRequest encodes a request as msgpack
func EncodeResolveRequest(req ResolveRequest) ([]byte, error) {
	return marshal(formatMsgpack, req)
}

// DecodeResolveReply decodes a reply in whichever format it was sent
func DecodeResolveReply(data []byte) (ResolveReply, error) {
	var reply ResolveReply
	if len(data) == 0 {
		return reply, fmt.Errorf("empty resolve reply")
	}
	format := detectFormat(data)
	if err := unmarshal(data, format, &reply); err != nil {
		return reply, fmt.Errorf("invalid %s resolve reply: %w", format, err)
	}
	return reply, nil
}
