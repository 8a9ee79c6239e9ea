// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package ssm

import (
	"context"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/havoctl/havoctl"
)

// Command describes an SSM SendCommand invocation. DocumentName is the
// only required field.
type Command struct {
	DocumentName    string
	DocumentVersion string
	Targets         []ssmtypes.Target
	Parameters      map[string][]string
	TimeoutSeconds  int32
	MaxConcurrency  string
	MaxErrors       string
}

// CreateDocument creates an SSM document from the content found at the
// given path.
func CreateDocument(ctx context.Context, api API, path, name, versionName, documentType, documentFormat string) (*awsssm.CreateDocumentOutput, error) {
	if path == "" || name == "" {
		return nil, havoctl.Failf("to create a document, you must specify the content path and name")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, havoctl.FailWith(err, "reading document content from %s", path)
	}
	in := &awsssm.CreateDocumentInput{
		Content: awsv2.String(string(content)),
		Name:    awsv2.String(name),
	}
	if versionName != "" {
		in.VersionName = awsv2.String(versionName)
	}
	if documentType != "" {
		in.DocumentType = ssmtypes.DocumentType(documentType)
	}
	if documentFormat != "" {
		in.DocumentFormat = ssmtypes.DocumentFormat(documentFormat)
	}
	out, err := api.CreateDocument(ctx, in)
	if err != nil {
		return nil, havoctl.FailWith(err, "failed to create document '%s'", name)
	}
	return out, nil
}

// SendCommand runs a document's commands on one or more managed
// instances.
func SendCommand(ctx context.Context, api API, cmd Command) (*awsssm.SendCommandOutput, error) {
	if cmd.DocumentName == "" {
		return nil, havoctl.Failf("to run commands, you must specify the document_name")
	}
	in := &awsssm.SendCommandInput{
		DocumentName: awsv2.String(cmd.DocumentName),
		Targets:      cmd.Targets,
		Parameters:   cmd.Parameters,
	}
	if cmd.DocumentVersion != "" {
		in.DocumentVersion = awsv2.String(cmd.DocumentVersion)
	}
	if cmd.TimeoutSeconds > 0 {
		in.TimeoutSeconds = awsv2.Int32(cmd.TimeoutSeconds)
	}
	if cmd.MaxConcurrency != "" {
		in.MaxConcurrency = awsv2.String(cmd.MaxConcurrency)
	}
	if cmd.MaxErrors != "" {
		in.MaxErrors = awsv2.String(cmd.MaxErrors)
	}
	out, err := api.SendCommand(ctx, in)
	if err != nil {
		return nil, havoctl.FailWith(err, "failed to send command for document '%s'", cmd.DocumentName)
	}
	return out, nil
}

// DeleteDocument deletes an SSM document and, with force set, all its
// versions.
func DeleteDocument(ctx context.Context, api API, name, versionName string, force bool) (*awsssm.DeleteDocumentOutput, error) {
	if name == "" {
		return nil, havoctl.Failf("to delete a document, you must specify the name")
	}
	in := &awsssm.DeleteDocumentInput{
		Name:  awsv2.String(name),
		Force: force,
	}
	if versionName != "" {
		in.VersionName = awsv2.String(versionName)
	}
	out, err := api.DeleteDocument(ctx, in)
	if err != nil {
		return nil, havoctl.FailWith(err, "failed to delete document '%s'", name)
	}
	return out, nil
}
