package config

const (
	DefaultClockProject    = "Clock"
	DefaultClockDeployment = "production"
	DefaultOpenAIVersion   = "2025-01-01-preview"
	DefaultAudioURL        = "https://github.com/MicrosoftLearning/mslearn-ai-language/raw/refs/heads/main/Labfiles/09-audio-chat/data/fresas.mp3"
)

// QnA configures the question answering client.
type QnA struct {
	Endpoint       string
	Key            string
	ProjectName    string
	DeploymentName string
	// APIVersion overrides the REST api-version when set.
	APIVersion string
}

// LoadQnA reads the question answering settings. All but QA_API_VERSION are required.
func LoadQnA(lookup Lookup) (QnA, error) {
	v, err := Require(lookup, "AI_SERVICE_ENDPOINT", "AI_SERVICE_KEY", "QA_PROJECT_NAME", "QA_DEPLOYMENT_NAME")
	if err != nil {
		return QnA{}, err
	}
	return QnA{
		Endpoint:       v["AI_SERVICE_ENDPOINT"],
		Key:            v["AI_SERVICE_KEY"],
		ProjectName:    v["QA_PROJECT_NAME"],
		DeploymentName: v["QA_DEPLOYMENT_NAME"],
		APIVersion:     lookup.get("QA_API_VERSION"),
	}, nil
}

// Clock configures the conversation analysis client.
type Clock struct {
	Endpoint       string
	Key            string
	ProjectName    string
	DeploymentName string
	ZonesFile      string
	// APIVersion overrides the REST api-version when set.
	APIVersion string
}

// LoadClock reads the conversation analysis settings. Project and deployment
// fall back to the Clock/production pair.
func LoadClock(lookup Lookup) (Clock, error) {
	v, err := Require(lookup, "LS_CONVERSATIONS_ENDPOINT", "LS_CONVERSATIONS_KEY")
	if err != nil {
		return Clock{}, err
	}
	return Clock{
		Endpoint:       v["LS_CONVERSATIONS_ENDPOINT"],
		Key:            v["LS_CONVERSATIONS_KEY"],
		ProjectName:    lookup.getOr("LS_PROJECT_NAME", DefaultClockProject),
		DeploymentName: lookup.getOr("LS_DEPLOYMENT_NAME", DefaultClockDeployment),
		ZonesFile:      lookup.get("CLOCK_ZONES_FILE"),
		APIVersion:     lookup.get("LS_API_VERSION"),
	}, nil
}

// AudioChat configures the audio chat client. An empty Key selects
// DefaultAzureCredential.
type AudioChat struct {
	Endpoint   string
	Deployment string
	Key        string
	APIVersion string
	AudioURL   string
}

// LoadAudioChat reads the audio chat settings.
func LoadAudioChat(lookup Lookup) (AudioChat, error) {
	v, err := Require(lookup, "PROJECT_ENDPOINT", "MODEL_DEPLOYMENT")
	if err != nil {
		return AudioChat{}, err
	}
	return AudioChat{
		Endpoint:   v["PROJECT_ENDPOINT"],
		Deployment: v["MODEL_DEPLOYMENT"],
		Key:        lookup.get("PROJECT_KEY"),
		APIVersion: lookup.getOr("OPENAI_API_VERSION", DefaultOpenAIVersion),
		AudioURL:   lookup.getOr("AUDIO_URL", DefaultAudioURL),
	}, nil
}
