package analytics

// Every heuristic constant in the analytics layer lives here so the scoring
// policy can be tuned without touching control flow.

// Productivity score components. Each is capped independently before the
// weighted sum; the total is bounded by [0, 100].
const (
	ratingWeight       = 25.0 // full weight at the maximum rating score
	ratingNeutral      = 12.5 // used when the day carries no rating
	ratingScaleMax     = 6.0
	hoursWeight        = 25.0
	hoursTarget        = 10.0 // hours/day that earn the full hours weight
	sleepWeight        = 20.0
	sleepTarget        = 8.0 // hours of sleep that earn the full sleep weight
	sleepNeutral       = 10.0
	sleepDeprivedBelow = 4.0 // below this, sleep contributes nothing
	activityWeight     = 15.0
	activityTarget     = 6.0 // tasks/day that earn the full activity weight
	flagBonus          = 5.0 // per exercise/study/focused-work flag
)

// Burnout risk factor points and thresholds.
const (
	burnoutMinRecords      = 3
	burnoutWindow          = 7
	negativeStreakLongPts  = 30.0
	negativeStreakLong     = 3
	negativeStreakShortPts = 15.0
	negativeStreakShort    = 2
	shortSleepPts          = 25.0
	shortSleepBelow        = 6.0
	mildSleepPts           = 10.0
	mildSleepBelow         = 7.0
	lowRatingPts           = 20.0
	lowRatingBelow         = 3.0
	lowRatingMinSamples    = 3
	overworkPts            = 15.0
	overworkAbove          = 10.0
	noExercisePts          = 10.0
	noExerciseDays         = 5
	lowActivityPts         = 10.0
	lowActivityBelow       = 2.0
)

// Burnout level boundaries on the capped [0, 100] risk score.
const (
	riskMediumFrom   = 20.0
	riskHighFrom     = 45.0
	riskCriticalFrom = 70.0
)

// Life score parameters.
const (
	lifeWindow            = 14
	sleepIdealHours       = 7.5
	sleepDeviationPenalty = 20.0 // points lost per hour of deviation from ideal
	socialNeutralRating   = 25.0 // rating half of the social blend when unrated
	moodNeutral           = 50.0
	trendFlatBand         = 1.0 // |delta| below this counts as flat
)

// Correlation and anomaly parameters.
const (
	correlationMinSamples = 3
	comboMinSamples       = 3
	comboTopN             = 5
	anomalyMinRecords     = 7
	anomalyDeviationMult  = 1.5
	anomalyTopN           = 10
)

// Miscellaneous analytics parameters.
const (
	activityBreakdownTopN = 15
	goalWeekWindowDays    = 7
	goalMonthWindowDays   = 30
	productiveDayScore    = 60.0 // minimum productivity score for a "productive day"
	alertNoExerciseDays   = 3
	alertShortSleepBelow  = 6.0
	alertNegativeStreak   = 3
)
