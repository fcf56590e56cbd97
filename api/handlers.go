package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsversehub/colorapi/colorspace"
	"github.com/jsversehub/colorapi/models"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "JSVerseHub Color API")
}

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	userSignup := &models.UserSignupRequest{}
	errParsingJson := json.NewDecoder(r.Body).Decode(userSignup)
	if errParsingJson != nil {
		app.badJSONRequest(w, r, errParsingJson)
		return
	}

	// Validate username doesn't contain spaces
	if len(userSignup.Username) == 0 {
		app.badRequest(w, r, errors.New("username is required"))
		return
	}

	// Check for spaces in username
	for _, char := range userSignup.Username {
		if char == ' ' {
			app.badRequest(w, r, errors.New("username cannot contain spaces"))
			return
		}
	}

	// Create new user
	newUser, newUserErr := models.NewUser(*userSignup)
	if newUserErr != nil {
		app.internalServerError(w, r, newUserErr)
		return
	}

	// Check if email already exists
	_, getErr := app.UserRepo.GetUserByEmail(newUser.Email)
	if getErr == nil {
		app.userAlreadyExists(w, r, getErr)
		return
	}

	// Check if username already exists
	_, getUsernameErr := app.UserRepo.GetUserByUsername(newUser.Username)
	if getUsernameErr == nil {
		app.badRequest(w, r, errors.New("username already taken"))
		return
	}

	// Store new user in database
	storedUser, errStoringNewUser := app.UserRepo.Create(newUser)
	if errStoringNewUser != nil {
		app.internalServerError(w, r, errStoringNewUser)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(storedUser)
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	// Parse credentials with device fingerprint
	creds := &models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	// Validate device fingerprint is provided
	if creds.DeviceFingerprint == "" {
		app.badJSONRequest(w, r, errors.New("deviceFingerprint is required"))
		return
	}

	// Validate user credentials
	user, err := app.UserRepo.ValidateAndGetUser(*creds)
	if err != nil {
		app.invalidCredentials(w, r, err)
		return
	}

	if !user.Approved {
		app.invalidCredentials(w, r, errors.New("user not yet approved"))
		return
	}

	// Create/update device record
	deviceExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtRefreshDuration))
	device := models.UserDevice{
		UserID:      user.UserID,
		Fingerprint: creds.DeviceFingerprint,
		DeviceData:  r.Header.Get("User-Agent"),
		Expiry:      deviceExpiry,
	}

	if err := app.UserRepo.CreateDevice(device); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// Generate JWT access token
	accessExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtAccessDuration))

	// Create access token claims
	accessClaims := models.JWTClaims{
		UserID:            user.UserID,
		Email:             user.Email,
		Kind:              user.Kind,
		DeviceFingerprint: creds.DeviceFingerprint,
		Scope:             "authentication",
		TokenType:         models.JWT.ACCESS_COOKIE_NAME,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(app.Config.JwtSecret))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}

	// Set access token cookie
	http.SetCookie(w, &http.Cookie{
		Name:     models.JWT.ACCESS_COOKIE_NAME,
		Value:    accessTokenString,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  accessExpiry,
	})

	// Generate refresh token
	refreshExpiry := deviceExpiry
	refreshClaims := models.JWTClaims{
		UserID:            user.UserID,
		Email:             user.Email,
		Kind:              user.Kind,
		DeviceFingerprint: creds.DeviceFingerprint,
		Scope:             "refresh",
		TokenType:         models.JWT.REFRESH_COOKIE_NAME,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(refreshExpiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(app.Config.JwtSecret))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// Set refresh token cookie
	http.SetCookie(w, &http.Cookie{
		Name:     models.JWT.REFRESH_COOKIE_NAME,
		Value:    refreshTokenString,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  refreshExpiry,
	})

	w.WriteHeader(http.StatusOK)
}

// GET /v1/users/me - Get current authenticated user
func (app *Application) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// PUT /v1/users/me/update - Update current authenticated user
func (app *Application) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requirePutMethod(w, r, ErrPUT)
		return
	}

	// Get current user from token
	currentUser, err := app.getUserFromToken(w, r)
	if err != nil {
		return
	}

	// Parse update request
	updateReq := &models.UserUpdateRequest{}
	if err := json.NewDecoder(r.Body).Decode(updateReq); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	// Update user fields
	currentUser.Username = updateReq.Username
	currentUser.Email = updateReq.Email
	currentUser.UpdatedAt = time.Now()

	// Save to database
	updatedUser, updateErr := app.UserRepo.Update(currentUser)
	if updateErr != nil {
		app.internalServerError(w, r, updateErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updatedUser)
}

// GET /v1/users - Get all users
func (app *Application) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, retrieveErr := app.UserRepo.GetAllUsers()
	if retrieveErr != nil {
		app.internalServerError(w, r, retrieveErr)
		return
	}

	json.NewEncoder(w).Encode(users)
}

type convertResponse struct {
	Input  string `json:"input"`
	From   string `json:"from"`
	To     string `json:"to"`
	Result string `json:"result"`
}

// GET /v1/colors/convert?value=&from=&to= - Convert a color between formats
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	value := r.URL.Query().Get("value")
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if value == "" || from == "" || to == "" {
		app.badRequest(w, r, errors.New("value, from and to query parameters are required"))
		return
	}

	result, err := colorspace.Convert(value, from, to)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(convertResponse{
		Input:  value,
		From:   from,
		To:     to,
		Result: result,
	})
}

type randomColorResponse struct {
	Color   models.ColorDetail `json:"color"`
	Alpha   float64            `json:"alpha"`
	Palette string             `json:"palette,omitempty"`
}

// GET /v1/colors/random - Generate a color; hue/saturation/lightness/alpha/
// palette query parameters override the random defaults
func (app *Application) getRandomColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	opts := colorspace.GenerateOptions{Palette: query.Get("palette")}

	parseOverride := func(param string) (*float64, error) {
		raw := query.Get(param)
		if raw == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be numeric: %v", param, err)
		}
		return &parsed, nil
	}

	var parseErr error
	if opts.Hue, parseErr = parseOverride("hue"); parseErr != nil {
		app.badRequest(w, r, parseErr)
		return
	}
	if opts.Saturation, parseErr = parseOverride("saturation"); parseErr != nil {
		app.badRequest(w, r, parseErr)
		return
	}
	if opts.Lightness, parseErr = parseOverride("lightness"); parseErr != nil {
		app.badRequest(w, r, parseErr)
		return
	}
	if opts.Alpha, parseErr = parseOverride("alpha"); parseErr != nil {
		app.badRequest(w, r, parseErr)
		return
	}

	generated, err := colorspace.Generate(opts, app.Palettes)
	if err != nil {
		// Unknown palette degrades to a random color; log and keep going
		log.Printf("palette lookup miss on random color: %v", err)
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(randomColorResponse{
		Color:   models.NewColorDetail(generated.RGB),
		Alpha:   generated.Alpha,
		Palette: opts.Palette,
	})
}

type schemeResponse struct {
	Base   string   `json:"base"`
	Rule   string   `json:"rule"`
	Colors []string `json:"colors"`
}

// GET /v1/colors/scheme?base=&rule=&count= - Generate a harmony scheme
func (app *Application) getColorScheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	base := query.Get("base")
	rule := query.Get("rule")
	if base == "" {
		app.badRequest(w, r, errors.New("base query parameter is required"))
		return
	}

	count := 0
	if rawCount := query.Get("count"); rawCount != "" {
		parsed, err := strconv.Atoi(rawCount)
		if err != nil {
			app.badRequest(w, r, errors.New("count must be an integer"))
			return
		}
		count = parsed
	}

	colors, err := colorspace.GenerateScheme(base, rule, count)
	if err != nil {
		var unknownRule colorspace.UnknownHarmonyError
		if errors.As(err, &unknownRule) {
			// Fall back to the base color alone, warn in the log
			log.Printf("unknown harmony rule %q, returning base color only", rule)
		} else {
			app.badRequest(w, r, err)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(schemeResponse{
		Base:   colors[0],
		Rule:   rule,
		Colors: colors,
	})
}

type gradientResponse struct {
	Start  string   `json:"start"`
	End    string   `json:"end"`
	Steps  int      `json:"steps"`
	Colors []string `json:"colors"`
}

// GET /v1/colors/gradient?start=&end=&steps= - Interpolate between two colors
func (app *Application) getGradient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	start := query.Get("start")
	end := query.Get("end")
	if start == "" || end == "" {
		app.badRequest(w, r, errors.New("start and end query parameters are required"))
		return
	}

	steps := 10
	if rawSteps := query.Get("steps"); rawSteps != "" {
		parsed, err := strconv.Atoi(rawSteps)
		if err != nil {
			app.badRequest(w, r, errors.New("steps must be an integer"))
			return
		}
		steps = parsed
	}

	colors, err := colorspace.GenerateGradient(start, end, steps)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(gradientResponse{
		Start:  colors[0],
		End:    colors[len(colors)-1],
		Steps:  steps,
		Colors: colors,
	})
}

type contrastResponse struct {
	Hex        string `json:"hex"`
	Brightness int    `json:"brightness"`
	IsLight    bool   `json:"isLight"`
	Contrast   string `json:"contrast"`
}

// GET /v1/colors/contrast?value= - Brightness and readable foreground color
func (app *Application) getContrast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	value := r.URL.Query().Get("value")
	if value == "" {
		app.badRequest(w, r, errors.New("value query parameter is required"))
		return
	}

	rgb, err := colorspace.HexToRGB(value)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	hex := colorspace.RGBToHex(rgb)
	brightness, _ := colorspace.Brightness(hex)
	light, _ := colorspace.IsLight(hex)
	contrast, _ := colorspace.ContrastColor(hex)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(contrastResponse{
		Hex:        hex,
		Brightness: brightness,
		IsLight:    light,
		Contrast:   contrast,
	})
}

// GET /v1/palettes/builtin - List built-in palettes
func (app *Application) getBuiltinPalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	palettes := make(map[string][]string)
	for _, name := range app.Palettes.Names() {
		colors, err := app.Palettes.Get(name)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		palettes[name] = colors
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(palettes)
}

// GET /v1/palettes/daily - Get today's featured palette
func (app *Application) getDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	dailyPalette, err := app.DailyPaletteRepo.GetToday()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := models.DailyPaletteResponse{
		Date:    dailyPalette.Date.Format("2006-01-02"),
		BaseHex: dailyPalette.BaseHex,
		Rule:    dailyPalette.Rule,
		Colors:  dailyPalette.Colors,
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// GET /v1/palettes/daily/all - Get all featured palettes
func (app *Application) getAllDailyPalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	dailyPalettes, err := app.DailyPaletteRepo.GetAll()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	var responses []models.DailyPaletteResponse
	for _, dp := range dailyPalettes {
		responses = append(responses, models.DailyPaletteResponse{
			Date:    dp.Date.Format("2006-01-02"),
			BaseHex: dp.BaseHex,
			Rule:    dp.Rule,
			Colors:  dp.Colors,
		})
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(responses)
}

// POST /v1/admin/palettes/generate - Manually generate today's palette (Admin only)
func (app *Application) generateDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	// Get today's date
	today := time.Now()
	normalizedToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	// Check if today's palette already exists
	existingPalette, err := app.DailyPaletteRepo.GetByDate(normalizedToday)
	if err == nil && existingPalette.ID != 0 {
		response := models.DailyPaletteResponse{
			Date:    existingPalette.Date.Format("2006-01-02"),
			BaseHex: existingPalette.BaseHex,
			Rule:    existingPalette.Rule,
			Colors:  existingPalette.Colors,
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Daily palette already exists for today",
			"palette": response,
		})
		return
	}

	// Generate a base color and derive a scheme locally
	generated, genErr := colorspace.Generate(colorspace.GenerateOptions{}, app.Palettes)
	if genErr != nil {
		app.internalServerError(w, r, genErr)
		return
	}

	rule := colorspace.HarmonyRules[rand.Intn(len(colorspace.HarmonyRules))]
	colors, schemeErr := colorspace.GenerateScheme(generated.Hex, rule, 0)
	if schemeErr != nil {
		app.internalServerError(w, r, schemeErr)
		return
	}

	dailyPalette := models.DailyPalette{
		Date:      normalizedToday,
		BaseHex:   generated.Hex,
		Rule:      rule,
		Colors:    colors,
		CreatedAt: time.Now(),
	}

	savedPalette, saveErr := app.DailyPaletteRepo.Create(dailyPalette)
	if saveErr != nil {
		app.internalServerError(w, r, saveErr)
		return
	}

	response := models.DailyPaletteResponse{
		Date:    savedPalette.Date.Format("2006-01-02"),
		BaseHex: savedPalette.BaseHex,
		Rule:    savedPalette.Rule,
		Colors:  savedPalette.Colors,
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Successfully generated daily palette",
		"palette": response,
	})
}
