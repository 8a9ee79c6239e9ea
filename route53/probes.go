// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package route53

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsroute53 "github.com/aws/aws-sdk-go-v2/service/route53"
	route53types "github.com/aws/aws-sdk-go-v2/service/route53/types"

	"github.com/havoctl/havoctl"
)

// GetHostedZone pulls information on a specific hosted zone.
func GetHostedZone(ctx context.Context, api API, zoneID string) (*awsroute53.GetHostedZoneOutput, error) {
	out, err := api.GetHostedZone(ctx, &awsroute53.GetHostedZoneInput{
		Id: awsv2.String(zoneID),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "getting hosted zone %s", zoneID)
	}
	if out.HostedZone == nil {
		return nil, havoctl.Failf("hosted zone %s not found", zoneID)
	}
	return out, nil
}

// GetHealthCheckStatus returns the checker observations for the given
// health check. It fails when no observations exist.
func GetHealthCheckStatus(ctx context.Context, api API, checkID string) (*awsroute53.GetHealthCheckStatusOutput, error) {
	out, err := api.GetHealthCheckStatus(ctx, &awsroute53.GetHealthCheckStatusInput{
		HealthCheckId: awsv2.String(checkID),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "getting status of health check %s", checkID)
	}
	if len(out.HealthCheckObservations) == 0 {
		return nil, havoctl.Failf("no results found for %s", checkID)
	}
	return out, nil
}

// GetDNSAnswer simulates a DNS query against the hosted zone and returns
// the response Route53 would give.
func GetDNSAnswer(ctx context.Context, api API, zoneID, recordName, recordType string) (*awsroute53.TestDNSAnswerOutput, error) {
	out, err := api.TestDNSAnswer(ctx, &awsroute53.TestDNSAnswerInput{
		HostedZoneId: awsv2.String(zoneID),
		RecordName:   awsv2.String(recordName),
		RecordType:   route53types.RRType(recordType),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "querying %s record %s in zone %s", recordType, recordName, zoneID)
	}
	return out, nil
}
