// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package lambda

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/havoctl/havoctl"
)

// GetFunctionConcurrency returns the function's reserved concurrent
// executions, or zero when no limit is set.
func GetFunctionConcurrency(ctx context.Context, api API, functionName string) (int32, error) {
	out, err := api.GetFunction(ctx, &awslambda.GetFunctionInput{
		FunctionName: awsv2.String(functionName),
	})
	if err != nil {
		return 0, havoctl.FailWith(err, "getting function '%s'", functionName)
	}
	if out.Concurrency == nil {
		return 0, nil
	}
	return awsv2.ToInt32(out.Concurrency.ReservedConcurrentExecutions), nil
}

// GetFunctionTimeout returns the function's execution timeout, in
// seconds.
func GetFunctionTimeout(ctx context.Context, api API, functionName string) (int32, error) {
	cfg, err := functionConfiguration(ctx, api, functionName)
	if err != nil {
		return 0, err
	}
	return awsv2.ToInt32(cfg.Timeout), nil
}

// GetFunctionMemorySize returns the function's memory allocation, in MB.
func GetFunctionMemorySize(ctx context.Context, api API, functionName string) (int32, error) {
	cfg, err := functionConfiguration(ctx, api, functionName)
	if err != nil {
		return 0, err
	}
	return awsv2.ToInt32(cfg.MemorySize), nil
}

func functionConfiguration(ctx context.Context, api API, functionName string) (*awslambda.GetFunctionConfigurationOutput, error) {
	out, err := api.GetFunctionConfiguration(ctx, &awslambda.GetFunctionConfigurationInput{
		FunctionName: awsv2.String(functionName),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "getting configuration of '%s'", functionName)
	}
	return out, nil
}
