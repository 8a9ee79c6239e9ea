// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package fis

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsfis "github.com/aws/aws-sdk-go-v2/service/fis"

	"github.com/havoctl/havoctl"
)

// StartExperiment starts an experiment from the given template.
func StartExperiment(ctx context.Context, api API, templateID, clientToken string, tags map[string]string) (*awsfis.StartExperimentOutput, error) {
	if templateID == "" {
		return nil, havoctl.Failf("you must pass a valid experiment template id, id provided was empty")
	}
	in := &awsfis.StartExperimentInput{
		ExperimentTemplateId: awsv2.String(templateID),
		Tags:                 tags,
	}
	if clientToken != "" {
		in.ClientToken = awsv2.String(clientToken)
	}
	out, err := api.StartExperiment(ctx, in)
	if err != nil {
		return nil, havoctl.FailWith(err, "start experiment failed")
	}
	return out, nil
}

// StopExperiment stops a running experiment.
func StopExperiment(ctx context.Context, api API, experimentID string) (*awsfis.StopExperimentOutput, error) {
	if experimentID == "" {
		return nil, havoctl.Failf("you must pass a valid experiment id, id provided was empty")
	}
	out, err := api.StopExperiment(ctx, &awsfis.StopExperimentInput{
		Id: awsv2.String(experimentID),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "stop experiment failed")
	}
	return out, nil
}
