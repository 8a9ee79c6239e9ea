// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package fis

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsfis "github.com/aws/aws-sdk-go-v2/service/fis"

	"github.com/havoctl/havoctl"
)

// GetExperiment returns information about the given experiment.
func GetExperiment(ctx context.Context, api API, experimentID string) (*awsfis.GetExperimentOutput, error) {
	if experimentID == "" {
		return nil, havoctl.Failf("you must pass a valid experiment id, id provided was empty")
	}
	out, err := api.GetExperiment(ctx, &awsfis.GetExperimentInput{
		Id: awsv2.String(experimentID),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "get experiment failed")
	}
	return out, nil
}
