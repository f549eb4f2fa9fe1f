package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/diillson/entregas-dashboard-go/internal/domain/entity"
	"github.com/diillson/entregas-dashboard-go/internal/domain/repository"
	"github.com/diillson/entregas-dashboard-go/internal/shared/types"
)

const s3Scheme = "s3://"

// s3API é o subconjunto do cliente S3 usado aqui.
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// SourceRepositoryImpl lê arquivos do disco local ou de buckets S3 (s3://bucket/chave).
type SourceRepositoryImpl struct {
	mu        sync.Mutex
	clients   map[string]s3API
	newClient func(ctx context.Context, opts types.SourceOptions) (s3API, error)
}

// NewSourceRepository cria uma nova implementação do SourceRepository.
func NewSourceRepository() repository.SourceRepository {
	return &SourceRepositoryImpl{
		clients:   make(map[string]s3API),
		newClient: newS3Client,
	}
}

// Fetch lê o arquivo indicado por location. Perfil e região AWS só valem para locais s3://.
func (r *SourceRepositoryImpl) Fetch(ctx context.Context, location string, opts types.SourceOptions) (entity.SourceFile, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return entity.SourceFile{}, types.ErrEmptySource
	}
	if strings.HasPrefix(strings.ToLower(location), s3Scheme) {
		return r.fetchS3(ctx, location, opts)
	}
	return fetchLocal(location)
}

func fetchLocal(location string) (entity.SourceFile, error) {
	fileInfo, err := os.Stat(location)
	if err != nil {
		return entity.SourceFile{}, fmt.Errorf("error accessing file: %w", err)
	}
	if fileInfo.IsDir() {
		return entity.SourceFile{}, fmt.Errorf("%s is a directory, not a file", location)
	}

	content, err := os.ReadFile(location)
	if err != nil {
		return entity.SourceFile{}, fmt.Errorf("error reading file: %w", err)
	}
	return entity.SourceFile{
		Name:     filepath.Base(location),
		Location: location,
		Content:  content,
	}, nil
}

func (r *SourceRepositoryImpl) fetchS3(ctx context.Context, location string, opts types.SourceOptions) (entity.SourceFile, error) {
	bucket, key, err := parseS3Location(location)
	if err != nil {
		return entity.SourceFile{}, err
	}

	client, err := r.getS3Client(ctx, opts)
	if err != nil {
		return entity.SourceFile{}, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return entity.SourceFile{}, fmt.Errorf("error downloading %s: %w", location, err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return entity.SourceFile{}, fmt.Errorf("error reading %s: %w", location, err)
	}
	return entity.SourceFile{
		Name:     path.Base(key),
		Location: location,
		Content:  content,
	}, nil
}

// getS3Client reaproveita um cliente por combinação perfil/região.
func (r *SourceRepositoryImpl) getS3Client(ctx context.Context, opts types.SourceOptions) (s3API, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cacheKey := opts.AWSProfile + "|" + opts.AWSRegion
	if client, ok := r.clients[cacheKey]; ok {
		return client, nil
	}

	client, err := r.newClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	r.clients[cacheKey] = client
	return client, nil
}

func newS3Client(ctx context.Context, opts types.SourceOptions) (s3API, error) {
	var optFns []func(*config.LoadOptions) error
	if opts.AWSProfile != "" {
		optFns = append(optFns, config.WithSharedConfigProfile(opts.AWSProfile))
	}
	if opts.AWSRegion != "" {
		optFns = append(optFns, config.WithRegion(opts.AWSRegion))
	}

	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// parseS3Location separa "s3://bucket/pasta/arquivo.csv" em bucket e chave.
func parseS3Location(location string) (string, string, error) {
	rest := location[len(s3Scheme):]
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("invalid S3 location %q, expected s3://bucket/key", location)
	}
	return bucket, key, nil
}
