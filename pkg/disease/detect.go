package disease

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
)

// Detection is the full result of analyzing one image.
type Detection struct {
	Key              string        `json:"disease_key"`
	Name             string        `json:"name"`
	Symptoms         []string      `json:"symptoms"`
	SeverityLevels   []string      `json:"severity_levels"`
	Treatment        string        `json:"treatment"`
	Prevention       string        `json:"prevention"`
	Confidence       float64       `json:"confidence"`
	DetectedSeverity string        `json:"detected_severity"`
	ImageAnalysis    ImageAnalysis `json:"image_analysis"`
}

// ImageAnalysis carries metadata about the simulated model run.
type ImageAnalysis struct {
	ImageSize          string  `json:"image_size"`
	ProcessingTime     float64 `json:"processing_time"`
	ModelVersion       string  `json:"model_version"`
	DetectionAlgorithm string  `json:"detection_algorithm"`
	DatasetSource      string  `json:"dataset_source"`
	ImageHash          string  `json:"image_hash"`
}

// ErrUnsupportedCrop reports a crop type with no catalog entry.
type ErrUnsupportedCrop struct {
	Crop string
}

func (e *ErrUnsupportedCrop) Error() string {
	return fmt.Sprintf("crop type %q not supported", e.Crop)
}

const (
	minConfidence = 0.5
	maxConfidence = 0.95
	hashPrefixLen = 500 // leading image bytes mixed into the hash
)

// Detect analyzes a base64 image payload for the given crop type. The
// diagnosis is a pure function of the image bytes and crop: the image
// hash selects the disease, its severity, and the confidence jitter, so
// re-submitting the same image always returns the same result.
func Detect(imageData, crop string) (*Detection, error) {
	catalog, ok := CatalogFor(crop)
	if !ok {
		return nil, &ErrUnsupportedCrop{Crop: crop}
	}

	prefix := imageData
	if len(prefix) > hashPrefixLen {
		prefix = prefix[:hashPrefixLen]
	}
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%s_%d", prefix, crop, len(imageData))))
	digest := hex.EncodeToString(sum[:])
	hashInt, err := strconv.ParseUint(digest[:8], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing image hash: %w", err)
	}

	entry := pickDisease(catalog, hashInt, len(imageData))

	confidence := entry.Confidence + (float64(hashInt%20)-10)/100
	confidence = math.Max(minConfidence, math.Min(maxConfidence, confidence))

	return &Detection{
		Key:              entry.Key,
		Name:             entry.Name,
		Symptoms:         entry.Symptoms,
		SeverityLevels:   entry.SeverityLevels,
		Treatment:        entry.Treatment,
		Prevention:       entry.Prevention,
		Confidence:       confidence,
		DetectedSeverity: entry.SeverityLevels[hashInt%uint64(len(entry.SeverityLevels))],
		ImageAnalysis: ImageAnalysis{
			ImageSize:          fmt.Sprintf("%dx%d", 800+hashInt%1200, 600+hashInt%900),
			ProcessingTime:     math.Round((0.5+float64(hashInt%150)/100)*100) / 100,
			ModelVersion:       "kaggle_dataset_v1.0",
			DetectionAlgorithm: "CNN-based classification (simulated)",
			DatasetSource:      "Kaggle Crop Diseases Classification",
			ImageHash:          digest[:8],
		},
	}, nil
}

// pickDisease maps the hash onto a catalog entry. Roughly one in five
// images of crops with a healthy entry come back healthy; the rest index
// into the non-healthy entries.
func pickDisease(catalog CropCatalog, hashInt uint64, imageLen int) Disease {
	var healthy *Disease
	var diseased []Disease
	for i := range catalog.Diseases {
		if catalog.Diseases[i].Key == "healthy" {
			healthy = &catalog.Diseases[i]
		} else {
			diseased = append(diseased, catalog.Diseases[i])
		}
	}

	if hashInt%10 < 2 && healthy != nil {
		return *healthy
	}
	if len(diseased) == 0 {
		diseased = catalog.Diseases
	}
	return diseased[(hashInt+uint64(imageLen))%uint64(len(diseased))]
}
