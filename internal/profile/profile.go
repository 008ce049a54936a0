// Package profile holds the learner's self-reported preferences used to
// personalize prompt construction. A profile is session-scoped: it is
// rebuilt from user input whenever preferences change and never persisted.
package profile

// LearningStyle is the learner's preferred way of consuming material.
// The values double as the labels the preference form offers.
type LearningStyle string

const (
	StyleNone             LearningStyle = ""
	StyleReading          LearningStyle = "Reading"
	StyleWatchingVideos   LearningStyle = "Watching Videos"
	StyleListeningToAudio LearningStyle = "Listening to Audio"
)

// Tone selects how the tutor should communicate.
type Tone string

const (
	ToneNone         Tone = ""
	ToneFormal       Tone = "Formal"
	ToneFriendly     Tone = "Friendly"
	ToneHumorous     Tone = "Humorous"
	ToneMotivational Tone = "Motivational"
)

// Profile is the set of learner preferences. Numeric fields are pointers:
// nil means "not provided", so a legitimate zero can be distinguished from
// an unset field instead of relying on zero-value truthiness.
type Profile struct {
	AgeGroup       string
	EducationLevel string
	FieldOfStudy   string
	LearningStyle  LearningStyle
	Topics         []string
	SkillLevel     *int     // 0-5
	StudyHours     *float64 // hours per day, 0-24
	Tone           Tone
}

// SetSkillLevel records the skill slider value. The slider's resting
// position is 0, which the form treats as "not answered", so 0 clears
// the field.
func (p *Profile) SetSkillLevel(v int) {
	if v == 0 {
		p.SkillLevel = nil
		return
	}
	p.SkillLevel = &v
}

// SetStudyHours records the hours-per-day input. 0.0 is the input's
// default and means "not answered".
func (p *Profile) SetStudyHours(v float64) {
	if v == 0 {
		p.StudyHours = nil
		return
	}
	p.StudyHours = &v
}

// HasContext reports whether any profile field is set, i.e. whether a
// learner-context turn belongs in the prompt.
func (p Profile) HasContext() bool {
	return p.AgeGroup != "" ||
		p.EducationLevel != "" ||
		p.FieldOfStudy != "" ||
		p.LearningStyle != StyleNone ||
		len(p.Topics) > 0 ||
		p.SkillLevel != nil ||
		p.StudyHours != nil
}

// AgeGroups lists the selectable age brackets.
func AgeGroups() []string {
	return []string{"Under 18", "18-25", "26-35", "36-50", "Above 50"}
}

// EducationLevels lists the selectable education levels. "Other" lets the
// learner type a free-form level.
func EducationLevels() []string {
	return []string{"High School", "Undergraduate", "Postgraduate", "Graduated", "Other"}
}

// TopicOptions lists the preset interest topics. "Other" lets the learner
// add a free-form topic.
func TopicOptions() []string {
	return []string{"Math", "Science", "History", "Literature", "Technology", "Art", "Other"}
}

// LearningStyles lists the selectable learning styles.
func LearningStyles() []LearningStyle {
	return []LearningStyle{StyleReading, StyleWatchingVideos, StyleListeningToAudio}
}

// Tones lists the selectable chatbot tones.
func Tones() []Tone {
	return []Tone{ToneFormal, ToneFriendly, ToneHumorous, ToneMotivational}
}
