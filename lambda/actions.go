// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package lambda

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/havoctl/havoctl"
)

// PutFunctionConcurrency throttles the function by capping its reserved
// concurrent executions.
func PutFunctionConcurrency(ctx context.Context, api API, functionName string, concurrentExecutions int32) (*awslambda.PutFunctionConcurrencyOutput, error) {
	if functionName == "" {
		return nil, havoctl.Failf("you must specify the lambda function name")
	}
	out, err := api.PutFunctionConcurrency(ctx, &awslambda.PutFunctionConcurrencyInput{
		FunctionName:                 awsv2.String(functionName),
		ReservedConcurrentExecutions: awsv2.Int32(concurrentExecutions),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "failed throttling lambda function '%s'", functionName)
	}
	return out, nil
}

// DeleteFunctionConcurrency lifts the reserved concurrency limit from the
// function.
func DeleteFunctionConcurrency(ctx context.Context, api API, functionName string) (*awslambda.DeleteFunctionConcurrencyOutput, error) {
	out, err := api.DeleteFunctionConcurrency(ctx, &awslambda.DeleteFunctionConcurrencyInput{
		FunctionName: awsv2.String(functionName),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "removing concurrency limit from '%s'", functionName)
	}
	return out, nil
}

// PutFunctionTimeout sets the function's execution timeout, in seconds.
func PutFunctionTimeout(ctx context.Context, api API, functionName string, timeout int32) (*awslambda.UpdateFunctionConfigurationOutput, error) {
	out, err := api.UpdateFunctionConfiguration(ctx, &awslambda.UpdateFunctionConfigurationInput{
		FunctionName: awsv2.String(functionName),
		Timeout:      awsv2.Int32(timeout),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "setting timeout of '%s'", functionName)
	}
	return out, nil
}

// PutFunctionMemorySize sets the function's memory allocation, in MB.
func PutFunctionMemorySize(ctx context.Context, api API, functionName string, memorySize int32) (*awslambda.UpdateFunctionConfigurationOutput, error) {
	out, err := api.UpdateFunctionConfiguration(ctx, &awslambda.UpdateFunctionConfigurationInput{
		FunctionName: awsv2.String(functionName),
		MemorySize:   awsv2.Int32(memorySize),
	})
	if err != nil {
		return nil, havoctl.FailWith(err, "setting memory size of '%s'", functionName)
	}
	return out, nil
}
