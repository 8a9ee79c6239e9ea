// Copyright (c) 2026 the havoctl authors.
// SPDX-License-Identifier: Apache-2.0

package fis

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsfis "github.com/aws/aws-sdk-go-v2/service/fis"
	fistypes "github.com/aws/aws-sdk-go-v2/service/fis/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFIS struct {
	startIn *awsfis.StartExperimentInput
	stopIn  *awsfis.StopExperimentInput
	getIn   *awsfis.GetExperimentInput
}

func (m *mockFIS) StartExperiment(ctx context.Context, params *awsfis.StartExperimentInput, optFns ...func(*awsfis.Options)) (*awsfis.StartExperimentOutput, error) {
	m.startIn = params
	return &awsfis.StartExperimentOutput{
		Experiment: &fistypes.Experiment{Id: awsv2.String("EXP123")},
	}, nil
}

func (m *mockFIS) StopExperiment(ctx context.Context, params *awsfis.StopExperimentInput, optFns ...func(*awsfis.Options)) (*awsfis.StopExperimentOutput, error) {
	m.stopIn = params
	return &awsfis.StopExperimentOutput{
		Experiment: &fistypes.Experiment{Id: params.Id},
	}, nil
}

func (m *mockFIS) GetExperiment(ctx context.Context, params *awsfis.GetExperimentInput, optFns ...func(*awsfis.Options)) (*awsfis.GetExperimentOutput, error) {
	m.getIn = params
	return &awsfis.GetExperimentOutput{
		Experiment: &fistypes.Experiment{Id: params.Id},
	}, nil
}

func TestStartExperiment(t *testing.T) {
	m := &mockFIS{}
	out, err := StartExperiment(context.Background(), m, "EXT6oWVA1WrLNy4XS", "token-1", map[string]string{"team": "chaos"})
	require.NoError(t, err)
	assert.Equal(t, "EXT6oWVA1WrLNy4XS", awsv2.ToString(m.startIn.ExperimentTemplateId))
	assert.Equal(t, "token-1", awsv2.ToString(m.startIn.ClientToken))
	assert.Equal(t, map[string]string{"team": "chaos"}, m.startIn.Tags)
	assert.Equal(t, "EXP123", awsv2.ToString(out.Experiment.Id))
}

func TestStartExperimentMissingTemplate(t *testing.T) {
	_, err := StartExperiment(context.Background(), &mockFIS{}, "", "", nil)
	require.EqualError(t, err, "you must pass a valid experiment template id, id provided was empty")
}

func TestStopExperiment(t *testing.T) {
	m := &mockFIS{}
	out, err := StopExperiment(context.Background(), m, "EXP123")
	require.NoError(t, err)
	assert.Equal(t, "EXP123", awsv2.ToString(m.stopIn.Id))
	assert.Equal(t, "EXP123", awsv2.ToString(out.Experiment.Id))
}

func TestStopExperimentMissingID(t *testing.T) {
	_, err := StopExperiment(context.Background(), &mockFIS{}, "")
	require.EqualError(t, err, "you must pass a valid experiment id, id provided was empty")
}

func TestGetExperiment(t *testing.T) {
	m := &mockFIS{}
	out, err := GetExperiment(context.Background(), m, "EXP123")
	require.NoError(t, err)
	assert.Equal(t, "EXP123", awsv2.ToString(m.getIn.Id))
	assert.Equal(t, "EXP123", awsv2.ToString(out.Experiment.Id))
}

func TestGetExperimentMissingID(t *testing.T) {
	_, err := GetExperiment(context.Background(), &mockFIS{}, "")
	require.EqualError(t, err, "you must pass a valid experiment id, id provided was empty")
}
