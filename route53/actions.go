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

// AssociateVPCWithZone associates a VPC with a private hosted zone.
func AssociateVPCWithZone(ctx context.Context, api API, zoneID, vpcID, vpcRegion, comment string) (*awsroute53.AssociateVPCWithHostedZoneOutput, error) {
	in := &awsroute53.AssociateVPCWithHostedZoneInput{
		HostedZoneId: awsv2.String(zoneID),
		VPC: &route53types.VPC{
			VPCId:     awsv2.String(vpcID),
			VPCRegion: route53types.VPCRegion(vpcRegion),
		},
	}
	if comment != "" {
		in.Comment = awsv2.String(comment)
	}
	out, err := api.AssociateVPCWithHostedZone(ctx, in)
	if err != nil {
		return nil, havoctl.FailWith(err, "associating vpc %s with zone %s", vpcID, zoneID)
	}
	return out, nil
}

// DisassociateVPCFromZone removes the association between a VPC and a
// private hosted zone.
func DisassociateVPCFromZone(ctx context.Context, api API, zoneID, vpcID, vpcRegion, comment string) (*awsroute53.DisassociateVPCFromHostedZoneOutput, error) {
	in := &awsroute53.DisassociateVPCFromHostedZoneInput{
		HostedZoneId: awsv2.String(zoneID),
		VPC: &route53types.VPC{
			VPCId:     awsv2.String(vpcID),
			VPCRegion: route53types.VPCRegion(vpcRegion),
		},
	}
	if comment != "" {
		in.Comment = awsv2.String(comment)
	}
	out, err := api.DisassociateVPCFromHostedZone(ctx, in)
	if err != nil {
		return nil, havoctl.FailWith(err, "disassociating vpc %s from zone %s", vpcID, zoneID)
	}
	return out, nil
}
