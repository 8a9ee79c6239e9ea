// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package havoctl

// Configuration carries the per-experiment settings the host orchestrator
// passes to every activity. Keys mirror the extension's documented
// configuration block ("aws_region", "aws_profile", "aws_endpoint").
type Configuration map[string]any

// Secrets carries credential material passed by the host orchestrator.
// Recognized keys: "aws_access_key_id", "aws_secret_access_key",
// "aws_session_token".
type Secrets map[string]any

// Region returns the configured AWS region, or "" when unset.
func (c Configuration) Region() string {
	return stringValue(c, "aws_region")
}

// Profile returns the shared-config profile to use, or "" when unset.
func (c Configuration) Profile() string {
	return stringValue(c, "aws_profile")
}

// Endpoint returns a base endpoint override, or "" when unset. Mostly
// useful against localstack-style stand-ins.
func (c Configuration) Endpoint() string {
	return stringValue(c, "aws_endpoint")
}

// Credentials returns the static credential triple from the secrets map.
// All three values are "" when the host did not provide credentials, in
// which case the default SDK chain applies.
func (s Secrets) Credentials() (accessKeyID, secretAccessKey, sessionToken string) {
	return stringValue(s, "aws_access_key_id"),
		stringValue(s, "aws_secret_access_key"),
		stringValue(s, "aws_session_token")
}

func stringValue(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
