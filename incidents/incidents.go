// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package incidents

import (
	"context"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsincidents "github.com/aws/aws-sdk-go-v2/service/ssmincidents"
	incidenttypes "github.com/aws/aws-sdk-go-v2/service/ssmincidents/types"

	"github.com/havoctl/havoctl"
	"github.com/havoctl/havoctl/awsclient"
)

// API is the subset of the SSM Incidents client used by this package.
type API interface {
	ListIncidentRecords(ctx context.Context, params *awsincidents.ListIncidentRecordsInput, optFns ...func(*awsincidents.Options)) (*awsincidents.ListIncidentRecordsOutput, error)
	ListRelatedItems(ctx context.Context, params *awsincidents.ListRelatedItemsInput, optFns ...func(*awsincidents.Options)) (*awsincidents.ListRelatedItemsOutput, error)
}

// New builds a real SSM Incidents client from the orchestrator-provided
// maps.
func New(ctx context.Context, conf havoctl.Configuration, secrets havoctl.Secrets, opts ...awsclient.Option) (API, error) {
	cfg, err := awsclient.Load(ctx, conf, secrets, opts...)
	if err != nil {
		return nil, err
	}
	return awsincidents.NewFromConfig(cfg), nil
}

// recordFilters builds the union-typed filter list matching incidents of
// the given impact and status created after start. createdBy narrows to a
// single creating resource or role when set.
func recordFilters(impact int32, status string, start time.Time, createdBy string) []incidenttypes.Filter {
	filters := []incidenttypes.Filter{
		{
			Key: awsv2.String("impact"),
			Condition: &incidenttypes.ConditionMemberEquals{
				Value: &incidenttypes.AttributeValueListMemberIntegerValues{Value: []int32{impact}},
			},
		},
		{
			Key:       awsv2.String("creationTime"),
			Condition: &incidenttypes.ConditionMemberAfter{Value: start},
		},
		{
			Key: awsv2.String("status"),
			Condition: &incidenttypes.ConditionMemberEquals{
				Value: &incidenttypes.AttributeValueListMemberStringValues{Value: []string{status}},
			},
		},
	}
	if createdBy != "" {
		filters = append(filters, incidenttypes.Filter{
			Key: awsv2.String("createdBy"),
			Condition: &incidenttypes.ConditionMemberEquals{
				Value: &incidenttypes.AttributeValueListMemberStringValues{Value: []string{createdBy}},
			},
		})
	}
	return filters
}
