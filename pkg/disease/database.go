// Package disease implements simulated crop disease detection backed by
// a built-in disease catalog. Detection is deterministic: the same image
// bytes and crop always produce the same diagnosis.
package disease

// Disease is one catalog entry for a crop.
type Disease struct {
	Key            string   `json:"disease_key"`
	Name           string   `json:"name"`
	Symptoms       []string `json:"symptoms"`
	SeverityLevels []string `json:"severity_levels"`
	Treatment      string   `json:"treatment"`
	Prevention     string   `json:"prevention"`
	Confidence     float64  `json:"confidence"` // base model confidence
}

// CropCatalog holds the known diseases for one crop type. Order matters:
// the detector indexes into the non-healthy entries by hash.
type CropCatalog struct {
	Crop     string
	Diseases []Disease
}

// Catalogs returns the built-in disease catalog for all supported crops.
// Callers must not mutate the returned slice.
func Catalogs() []CropCatalog {
	return builtinCatalogs
}

// CatalogFor looks up the catalog for a crop type. The second return is
// false when the crop is not supported.
func CatalogFor(crop string) (CropCatalog, bool) {
	for _, c := range builtinCatalogs {
		if c.Crop == crop {
			return c, true
		}
	}
	return CropCatalog{}, false
}

// SupportedCrops lists every crop type the detector understands, in
// catalog order.
func SupportedCrops() []string {
	crops := make([]string, len(builtinCatalogs))
	for i, c := range builtinCatalogs {
		crops[i] = c.Crop
	}
	return crops
}

const (
	severityMild     = "mild"
	severityModerate = "moderate"
	severitySevere   = "severe"
	severityHealthy  = "healthy"
)

var standardSeverities = []string{severityMild, severityModerate, severitySevere}

func healthyEntry(name, production string) Disease {
	return Disease{
		Key:            "healthy",
		Name:           name,
		Symptoms:       []string{"No visible disease symptoms", "Normal leaf color and texture", production},
		SeverityLevels: []string{severityHealthy},
		Treatment:      "Continue current care practices",
		Prevention:     "Maintain good growing conditions",
		Confidence:     0.90,
	}
}

var builtinCatalogs = []CropCatalog{
	{
		Crop: "wheat",
		Diseases: []Disease{
			{
				Key:            "rust",
				Name:           "Wheat Rust",
				Symptoms:       []string{"Yellow-orange pustules on leaves", "Reduced grain size", "Premature leaf death"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply fungicide containing tebuconazole or propiconazole",
				Prevention:     "Plant resistant varieties, proper crop rotation, avoid excessive nitrogen",
				Confidence:     0.85,
			},
			{
				Key:            "powdery_mildew",
				Name:           "Powdery Mildew",
				Symptoms:       []string{"White powdery coating on leaves", "Stunted growth", "Reduced yield"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply sulfur-based fungicide or neem oil",
				Prevention:     "Ensure good air circulation, avoid overcrowding",
				Confidence:     0.78,
			},
			{
				Key:            "head_blight",
				Name:           "Fusarium Head Blight",
				Symptoms:       []string{"Bleached spikelets", "Pink or orange mold on kernels", "Shriveled grains"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply fungicide at flowering stage",
				Prevention:     "Crop rotation, proper field sanitation",
				Confidence:     0.82,
			},
		},
	},
	{
		Crop: "rice",
		Diseases: []Disease{
			{
				Key:            "blast",
				Name:           "Rice Blast",
				Symptoms:       []string{"Diamond-shaped lesions on leaves", "Node infection", "Panicle blast"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply tricyclazole or azoxystrobin fungicide",
				Prevention:     "Plant resistant varieties, proper water management",
				Confidence:     0.88,
			},
			{
				Key:            "brown_spot",
				Name:           "Brown Spot",
				Symptoms:       []string{"Small brown spots on leaves", "Yellowing of leaves", "Reduced grain quality"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply copper-based fungicide",
				Prevention:     "Proper fertilization, avoid water stress",
				Confidence:     0.75,
			},
			{
				Key:            "bacterial_blight",
				Name:           "Bacterial Blight",
				Symptoms:       []string{"Water-soaked lesions", "Yellowing along leaf margins", "Wilting"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply copper-based bactericide",
				Prevention:     "Use disease-free seed, proper field drainage",
				Confidence:     0.80,
			},
		},
	},
	{
		Crop: "corn",
		Diseases: []Disease{
			{
				Key:            "northern_leaf_blight",
				Name:           "Northern Leaf Blight",
				Symptoms:       []string{"Long elliptical lesions on leaves", "Yellowing and death of leaves", "Reduced yield"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply fungicide containing azoxystrobin",
				Prevention:     "Crop rotation, tillage to bury residue",
				Confidence:     0.83,
			},
			{
				Key:            "common_rust",
				Name:           "Common Rust",
				Symptoms:       []string{"Small reddish-brown pustules", "Yellowing of leaves", "Reduced photosynthesis"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply fungicide with triazole compounds",
				Prevention:     "Plant resistant hybrids, proper spacing",
				Confidence:     0.79,
			},
			{
				Key:            "gray_leaf_spot",
				Name:           "Gray Leaf Spot",
				Symptoms:       []string{"Rectangular lesions with gray centers", "Yellow halos around spots", "Premature death"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply strobilurin fungicide",
				Prevention:     "Crop rotation, residue management",
				Confidence:     0.81,
			},
		},
	},
	{
		Crop: "tomato",
		Diseases: []Disease{
			{
				Key:            "early_blight",
				Name:           "Early Blight",
				Symptoms:       []string{"Concentric rings on leaves", "Yellowing and defoliation", "Fruit lesions"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply chlorothalonil or copper fungicide",
				Prevention:     "Proper spacing, avoid overhead watering",
				Confidence:     0.86,
			},
			{
				Key:            "late_blight",
				Name:           "Late Blight",
				Symptoms:       []string{"Water-soaked lesions", "White mold on underside", "Rapid plant death"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply fungicide containing metalaxyl",
				Prevention:     "Good air circulation, avoid wet conditions",
				Confidence:     0.89,
			},
			{
				Key:            "bacterial_wilt",
				Name:           "Bacterial Wilt",
				Symptoms:       []string{"Wilting during hot weather", "Brown vascular tissue", "Plant collapse"},
				SeverityLevels: standardSeverities,
				Treatment:      "Remove infected plants, apply copper bactericide",
				Prevention:     "Crop rotation, use resistant varieties",
				Confidence:     0.84,
			},
		},
	},
	{
		Crop: "potato",
		Diseases: []Disease{
			{
				Key:            "late_blight",
				Name:           "Late Blight",
				Symptoms:       []string{"Dark lesions on leaves", "White mold on underside", "Tuber rot"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply fungicide with metalaxyl",
				Prevention:     "Proper spacing, avoid overhead irrigation",
				Confidence:     0.87,
			},
			{
				Key:            "early_blight",
				Name:           "Early Blight",
				Symptoms:       []string{"Target-like lesions", "Yellowing of leaves", "Reduced tuber size"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply chlorothalonil fungicide",
				Prevention:     "Crop rotation, proper fertilization",
				Confidence:     0.82,
			},
			healthyEntry("Healthy Potato", "Healthy tuber development"),
		},
	},
	{
		Crop: "apple",
		Diseases: []Disease{
			{
				Key:            "apple_scab",
				Name:           "Apple Scab",
				Symptoms:       []string{"Dark, scaly lesions on leaves and fruit", "Circular spots with velvety texture", "Premature leaf drop"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply fungicide containing myclobutanil or captan",
				Prevention:     "Plant resistant varieties, proper pruning, remove fallen leaves",
				Confidence:     0.88,
			},
			{
				Key:            "black_rot",
				Name:           "Black Rot",
				Symptoms:       []string{"Brown lesions on leaves", "Black rot on fruit", "Cankers on branches"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply copper fungicide or captan",
				Prevention:     "Remove infected plant parts, improve air circulation",
				Confidence:     0.85,
			},
			{
				Key:            "cedar_apple_rust",
				Name:           "Cedar Apple Rust",
				Symptoms:       []string{"Yellow-orange spots on leaves", "Galls on cedar trees", "Fruit deformation"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply fungicide containing myclobutanil",
				Prevention:     "Remove cedar trees within 2 miles, plant resistant varieties",
				Confidence:     0.82,
			},
			healthyEntry("Healthy Apple", "Healthy fruit development"),
		},
	},
	{
		Crop: "cherry",
		Diseases: []Disease{
			{
				Key:            "powdery_mildew",
				Name:           "Powdery Mildew",
				Symptoms:       []string{"White powdery coating on leaves", "Stunted growth", "Reduced fruit quality"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply sulfur-based fungicide or neem oil",
				Prevention:     "Ensure good air circulation, avoid overhead watering",
				Confidence:     0.87,
			},
			healthyEntry("Healthy Cherry", "Healthy fruit development"),
		},
	},
	{
		Crop: "grape",
		Diseases: []Disease{
			{
				Key:            "black_rot",
				Name:           "Black Rot",
				Symptoms:       []string{"Circular brown spots on leaves", "Black rot on berries", "Cankers on canes"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply fungicide containing mancozeb or captan",
				Prevention:     "Remove infected plant parts, improve air circulation",
				Confidence:     0.89,
			},
			{
				Key:            "esca",
				Name:           "Esca (Black Measles)",
				Symptoms:       []string{"Yellowing between leaf veins", "Black spots on leaves", "Wood decay in trunk"},
				SeverityLevels: standardSeverities,
				Treatment:      "Prune infected wood, apply fungicide to wounds",
				Prevention:     "Proper pruning techniques, avoid trunk wounds",
				Confidence:     0.81,
			},
			{
				Key:            "leaf_blight",
				Name:           "Leaf Blight",
				Symptoms:       []string{"Brown spots on leaves", "Premature defoliation", "Reduced fruit quality"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply copper-based fungicide",
				Prevention:     "Improve air circulation, avoid overhead watering",
				Confidence:     0.85,
			},
			healthyEntry("Healthy Grape", "Healthy fruit development"),
		},
	},
	{
		Crop: "orange",
		Diseases: []Disease{
			{
				Key:            "haunglongbing",
				Name:           "Huanglongbing (Citrus Greening)",
				Symptoms:       []string{"Yellowing of leaves", "Small, misshapen fruit", "Bitter taste"},
				SeverityLevels: standardSeverities,
				Treatment:      "Remove infected trees, control psyllid vectors",
				Prevention:     "Use disease-free planting material, monitor for psyllids",
				Confidence:     0.92,
			},
			healthyEntry("Healthy Orange", "Healthy fruit development"),
		},
	},
	{
		Crop: "peach",
		Diseases: []Disease{
			{
				Key:            "bacterial_spot",
				Name:           "Bacterial Spot",
				Symptoms:       []string{"Small dark spots on leaves and fruit", "Yellowing around spots", "Fruit cracking"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply copper-based bactericide",
				Prevention:     "Plant resistant varieties, avoid overhead watering",
				Confidence:     0.88,
			},
			healthyEntry("Healthy Peach", "Healthy fruit development"),
		},
	},
	{
		Crop: "bell_pepper",
		Diseases: []Disease{
			{
				Key:            "bacterial_spot",
				Name:           "Bacterial Spot",
				Symptoms:       []string{"Small dark spots on leaves and fruit", "Yellowing around spots", "Fruit rot"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply copper-based bactericide",
				Prevention:     "Use disease-free seed, avoid overhead watering",
				Confidence:     0.87,
			},
			healthyEntry("Healthy Bell Pepper", "Healthy fruit development"),
		},
	},
	{
		Crop:     "raspberry",
		Diseases: []Disease{healthyEntry("Healthy Raspberry", "Healthy fruit development")},
	},
	{
		Crop:     "soybean",
		Diseases: []Disease{healthyEntry("Healthy Soybean", "Healthy pod development")},
	},
	{
		Crop: "squash",
		Diseases: []Disease{
			{
				Key:            "powdery_mildew",
				Name:           "Powdery Mildew",
				Symptoms:       []string{"White powdery coating on leaves", "Stunted growth", "Reduced fruit quality"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply sulfur-based fungicide or neem oil",
				Prevention:     "Ensure good air circulation, avoid overhead watering",
				Confidence:     0.88,
			},
			healthyEntry("Healthy Squash", "Healthy fruit development"),
		},
	},
	{
		Crop: "strawberry",
		Diseases: []Disease{
			{
				Key:            "leaf_scorch",
				Name:           "Leaf Scorch",
				Symptoms:       []string{"Brown spots on leaves", "Premature defoliation", "Reduced fruit quality"},
				SeverityLevels: standardSeverities,
				Treatment:      "Apply fungicide containing captan",
				Prevention:     "Remove infected leaves, improve air circulation",
				Confidence:     0.84,
			},
			healthyEntry("Healthy Strawberry", "Healthy fruit development"),
		},
	},
}
