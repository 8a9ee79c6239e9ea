// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package rds

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsrds "github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/havoctl/havoctl"
)

// FailoverDBCluster forces a failover of the given Aurora cluster,
// optionally promoting a specific replica.
func FailoverDBCluster(ctx context.Context, api API, clusterID, targetInstanceID string) (*awsrds.FailoverDBClusterOutput, error) {
	if clusterID == "" {
		return nil, havoctl.Failf("you must specify the db cluster identifier")
	}
	in := &awsrds.FailoverDBClusterInput{
		DBClusterIdentifier: awsv2.String(clusterID),
	}
	if targetInstanceID != "" {
		in.TargetDBInstanceIdentifier = awsv2.String(targetInstanceID)
	}
	out, err := api.FailoverDBCluster(ctx, in)
	if err != nil {
		return nil, havoctl.FailWith(err, "failed issuing a failover for DB cluster '%s'", clusterID)
	}
	return out, nil
}

// RebootDBInstance forces a reboot of the given DB instance. When
// forceFailover is set and the instance is multi-AZ, the reboot happens
// through a failover.
func RebootDBInstance(ctx context.Context, api API, instanceID string, forceFailover bool) (*awsrds.RebootDBInstanceOutput, error) {
	if instanceID == "" {
		return nil, havoctl.Failf("you must specify the db instance identifier")
	}
	out, err := api.RebootDBInstance(ctx, &awsrds.RebootDBInstanceInput{
		DBInstanceIdentifier: awsv2.String(instanceID),
		ForceFailover:        awsv2.Bool(forceFailover),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "failed issuing a reboot of db instance '%s'", instanceID)
	}
	return out, nil
}
