// Package ontology implements the medical ontology inference client on
// Amazon Comprehend Medical's asynchronous APIs.
package ontology

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	cm "github.com/aws/aws-sdk-go-v2/service/comprehendmedical"
	"github.com/aws/aws-sdk-go-v2/service/comprehendmedical/types"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/port"
)

type comprehendMedicalClient struct {
	client         *cm.Client
	dataAccessRole string
}

// NewComprehendMedicalClient creates the Comprehend Medical-backed
// OntologyClient. The data access role lets the service read the extracted
// text and write its output files.
func NewComprehendMedicalClient(awsCfg aws.Config, cfg *config.Config) port.OntologyClient {
	return &comprehendMedicalClient{
		client:         cm.NewFromConfig(awsCfg),
		dataAccessRole: cfg.Notify.DataAccessRole,
	}
}

func (c *comprehendMedicalClient) StartInference(ctx context.Context, kind domain.OntologyKind, input, output domain.Location, jobName string) (string, error) {
	inputConfig := &types.InputDataConfig{
		S3Bucket: aws.String(input.Bucket),
		S3Key:    aws.String(input.Prefix),
	}
	outputConfig := &types.OutputDataConfig{
		S3Bucket: aws.String(output.Bucket),
		S3Key:    aws.String(output.Prefix),
	}
	role := aws.String(c.dataAccessRole)
	name := aws.String(jobName)

	var id *string
	switch kind {
	case domain.OntologyICD10:
		result, err := c.client.StartICD10CMInferenceJob(ctx, &cm.StartICD10CMInferenceJobInput{
			InputDataConfig:   inputConfig,
			OutputDataConfig:  outputConfig,
			DataAccessRoleArn: role,
			JobName:           name,
			LanguageCode:      types.LanguageCodeEn,
		})
		if err != nil {
			return "", fmt.Errorf("start icd10 inference: %w", err)
		}
		id = result.JobId
	case domain.OntologyRxNorm:
		result, err := c.client.StartRxNormInferenceJob(ctx, &cm.StartRxNormInferenceJobInput{
			InputDataConfig:   inputConfig,
			OutputDataConfig:  outputConfig,
			DataAccessRoleArn: role,
			JobName:           name,
			LanguageCode:      types.LanguageCodeEn,
		})
		if err != nil {
			return "", fmt.Errorf("start rxnorm inference: %w", err)
		}
		id = result.JobId
	case domain.OntologySNOMED:
		result, err := c.client.StartSNOMEDCTInferenceJob(ctx, &cm.StartSNOMEDCTInferenceJobInput{
			InputDataConfig:   inputConfig,
			OutputDataConfig:  outputConfig,
			DataAccessRoleArn: role,
			JobName:           name,
			LanguageCode:      types.LanguageCodeEn,
		})
		if err != nil {
			return "", fmt.Errorf("start snomed inference: %w", err)
		}
		id = result.JobId
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownJobKind, kind)
	}

	if id == nil || *id == "" {
		return "", domain.ErrMissingJobID
	}
	return *id, nil
}

func jobState(props *types.ComprehendMedicalAsyncJobProperties) port.OntologyJob {
	job := port.OntologyJob{}
	if props == nil {
		return job
	}
	job.JobID = aws.ToString(props.JobId)
	job.Status = domain.JobStatus(props.JobStatus)
	if out := props.OutputDataConfig; out != nil {
		job.Output = domain.Location{
			Bucket: aws.ToString(out.S3Bucket),
			Prefix: aws.ToString(out.S3Key),
		}
	}
	return job
}

func (c *comprehendMedicalClient) DescribeJob(ctx context.Context, kind domain.OntologyKind, jobID string) (port.OntologyJob, error) {
	switch kind {
	case domain.OntologyICD10:
		result, err := c.client.DescribeICD10CMInferenceJob(ctx, &cm.DescribeICD10CMInferenceJobInput{
			JobId: aws.String(jobID),
		})
		if err != nil {
			return port.OntologyJob{}, fmt.Errorf("describe icd10 inference: %w", err)
		}
		return jobState(result.ComprehendMedicalAsyncJobProperties), nil
	case domain.OntologyRxNorm:
		result, err := c.client.DescribeRxNormInferenceJob(ctx, &cm.DescribeRxNormInferenceJobInput{
			JobId: aws.String(jobID),
		})
		if err != nil {
			return port.OntologyJob{}, fmt.Errorf("describe rxnorm inference: %w", err)
		}
		return jobState(result.ComprehendMedicalAsyncJobProperties), nil
	case domain.OntologySNOMED:
		result, err := c.client.DescribeSNOMEDCTInferenceJob(ctx, &cm.DescribeSNOMEDCTInferenceJobInput{
			JobId: aws.String(jobID),
		})
		if err != nil {
			return port.OntologyJob{}, fmt.Errorf("describe snomed inference: %w", err)
		}
		return jobState(result.ComprehendMedicalAsyncJobProperties), nil
	}
	return port.OntologyJob{}, fmt.Errorf("%w: %q", domain.ErrUnknownJobKind, kind)
}
