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
	"github.com/havoctl/havoctl/internal/log"
)

// GetIncidents returns the incidents of the given impact and status
// created within the window. The window accepts "now", a Unix timestamp,
// or a relative expression such as "3 minutes"; it defaults to the last
// three minutes. Impact defaults to 1 and status to OPEN. createdBy
// narrows to incidents created by the given resource or role ARN.
func GetIncidents(ctx context.Context, api API, impact int32, status, createdInTheLast, createdBy string) ([]incidenttypes.IncidentRecordSummary, error) {
	if impact <= 0 {
		impact = 1
	}
	if status == "" {
		status = string(incidenttypes.IncidentRecordStatusOpen)
	}
	if createdInTheLast == "" {
		createdInTheLast = "3 minutes"
	}

	end, err := havoctl.ParseTime("now", time.Time{})
	if err != nil {
		return nil, err
	}
	start, err := havoctl.ParseTime(createdInTheLast, end)
	if err != nil {
		return nil, err
	}

	log.Debugf("requesting incidents after %s with impact %d and status %s", start, impact, status)
	out, err := api.ListIncidentRecords(ctx, &awsincidents.ListIncidentRecordsInput{
		Filters:    recordFilters(impact, status, start, createdBy),
		MaxResults: awsv2.Int32(10),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "SSM Incidents API failed")
	}
	log.Debugf("found %d incidents", len(out.IncidentRecordSummaries))
	return out.IncidentRecordSummaries, nil
}

// GetActiveIncidents returns the open incidents of the given impact
// created within the window.
func GetActiveIncidents(ctx context.Context, api API, impact int32, createdInTheLast, createdBy string) ([]incidenttypes.IncidentRecordSummary, error) {
	return GetIncidents(ctx, api, impact, string(incidenttypes.IncidentRecordStatusOpen), createdInTheLast, createdBy)
}

// GetResolvedIncidents returns the resolved incidents of the given impact
// created within the window.
func GetResolvedIncidents(ctx context.Context, api API, impact int32, createdInTheLast, createdBy string) ([]incidenttypes.IncidentRecordSummary, error) {
	return GetIncidents(ctx, api, impact, string(incidenttypes.IncidentRecordStatusResolved), createdInTheLast, createdBy)
}

// HasIncidentBeenOpened reports whether at least one incident of the
// given impact was opened within the window.
func HasIncidentBeenOpened(ctx context.Context, api API, impact int32, createdInTheLast, createdBy string) (bool, error) {
	incidents, err := GetActiveIncidents(ctx, api, impact, createdInTheLast, createdBy)
	if err != nil {
		return false, err
	}
	return len(incidents) > 0, nil
}

// HasIncidentBeenResolved reports whether at least one incident of the
// given impact was resolved within the window.
func HasIncidentBeenResolved(ctx context.Context, api API, impact int32, createdInTheLast, createdBy string) (bool, error) {
	incidents, err := GetResolvedIncidents(ctx, api, impact, createdInTheLast, createdBy)
	if err != nil {
		return false, err
	}
	return len(incidents) > 0, nil
}

// GetActiveIncidentItems returns the items related to the most recent
// open incident matching the criteria.
func GetActiveIncidentItems(ctx context.Context, api API, impact int32, createdInTheLast, createdBy string) ([]incidenttypes.RelatedItem, error) {
	incidents, err := GetActiveIncidents(ctx, api, impact, createdInTheLast, createdBy)
	if err != nil {
		return nil, err
	}
	return relatedItems(ctx, api, incidents)
}

// GetResolvedIncidentItems returns the items related to the most recent
// resolved incident matching the criteria.
func GetResolvedIncidentItems(ctx context.Context, api API, impact int32, createdInTheLast, createdBy string) ([]incidenttypes.RelatedItem, error) {
	incidents, err := GetResolvedIncidents(ctx, api, impact, createdInTheLast, createdBy)
	if err != nil {
		return nil, err
	}
	return relatedItems(ctx, api, incidents)
}

func relatedItems(ctx context.Context, api API, incidents []incidenttypes.IncidentRecordSummary) ([]incidenttypes.RelatedItem, error) {
	if len(incidents) == 0 {
		return nil, havoctl.Failf("no incidents matching the criteria")
	}

	arn := awsv2.ToString(incidents[0].Arn)
	log.Debugf("looking up items for incident %s", arn)
	out, err := api.ListRelatedItems(ctx, &awsincidents.ListRelatedItemsInput{
		IncidentRecordArn: awsv2.String(arn),
		MaxResults:        awsv2.Int32(10),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "SSM Incidents API failed")
	}
	log.Debugf("found %d items", len(out.RelatedItems))
	return out.RelatedItems, nil
}
