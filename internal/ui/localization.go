package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyEdit               = "edit"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeyRevealConfig       = "reveal_config"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyFrameRate          = "frame_rate"
	KeyTrackHeight        = "track_height"
	KeyDefaultMixDuration = "default_mix_duration"
	KeyDefaultMixAlign    = "default_mix_align"
	KeyDuration           = "duration"
	KeyAlignLeft          = "align_left"
	KeyAlignRight         = "align_right"
	KeyAlignCenter        = "align_center"
	KeyHideTrack          = "hide_track"
	KeyMuteTrack          = "mute_track"
	KeyLockTrack          = "lock_track"
	KeyInsertTrack        = "insert_track"
	KeyDeleteTrack        = "delete_track"
	KeyConfigureTrack     = "configure_track"
	KeyAddTrack           = "add_track"
	KeyCreateMix          = "create_mix"
	KeyRemoveMix          = "remove_mix"
	KeyNoMixSelected      = "no_mix_selected"
	KeySelectTwoClips     = "select_two_clips"
	KeyMixNotCreated      = "mix_not_created"
	KeyMoveRefused        = "move_refused"
	KeyPosition           = "position"
	KeyMonitorDefault     = "monitor_default"
	KeyMonitorGeometry    = "monitor_geometry"
	KeyTrackName          = "track_name"
	KeyVideo              = "video"
	KeyAudio              = "audio"
	KeySelection          = "selection"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Framecut",
		KeyFile:               "File",
		KeyEdit:               "Edit",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeyRevealConfig:       "Open Config Folder",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyFrameRate:          "Frame Rate",
		KeyTrackHeight:        "Track Height",
		KeyDefaultMixDuration: "Default Mix Duration",
		KeyDefaultMixAlign:    "Default Mix Alignment",
		KeyDuration:           "Duration:",
		KeyAlignLeft:          "Align left",
		KeyAlignRight:         "Align right",
		KeyAlignCenter:        "Center",
		KeyHideTrack:          "Hide track",
		KeyMuteTrack:          "Mute track",
		KeyLockTrack:          "Lock track",
		KeyInsertTrack:        "Insert Track",
		KeyDeleteTrack:        "Delete Track",
		KeyConfigureTrack:     "Configure Track",
		KeyAddTrack:           "Add Track",
		KeyCreateMix:          "Create Mix",
		KeyRemoveMix:          "Remove Mix",
		KeyNoMixSelected:      "Select a clip with a mix",
		KeySelectTwoClips:     "Select two adjacent clips",
		KeyMixNotCreated:      "Mix could not be created",
		KeyMoveRefused:        "Clips could not be moved",
		KeyPosition:           "Position",
		KeyMonitorDefault:     "Monitor",
		KeyMonitorGeometry:    "Monitor: geometry overlay",
		KeyTrackName:          "Track name",
		KeyVideo:              "Video",
		KeyAudio:              "Audio",
		KeySelection:          "Selected",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Framecut",
		KeyFile:               "Файл",
		KeyEdit:               "Правка",
		KeySettings:           "Настройки",
		KeyLanguage:           "Язык",
		KeyRevealConfig:       "Открыть папку настроек",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyFrameRate:          "Частота кадров",
		KeyTrackHeight:        "Высота дорожки",
		KeyDefaultMixDuration: "Длительность перехода по умолчанию",
		KeyDefaultMixAlign:    "Выравнивание перехода по умолчанию",
		KeyDuration:           "Длительность:",
		KeyAlignLeft:          "Выровнять влево",
		KeyAlignRight:         "Выровнять вправо",
		KeyAlignCenter:        "По центру",
		KeyHideTrack:          "Скрыть дорожку",
		KeyMuteTrack:          "Заглушить дорожку",
		KeyLockTrack:          "Заблокировать дорожку",
		KeyInsertTrack:        "Вставить дорожку",
		KeyDeleteTrack:        "Удалить дорожку",
		KeyConfigureTrack:     "Настроить дорожку",
		KeyAddTrack:           "Добавить дорожку",
		KeyCreateMix:          "Создать переход",
		KeyRemoveMix:          "Удалить переход",
		KeyNoMixSelected:      "Выберите клип с переходом",
		KeySelectTwoClips:     "Выберите два соседних клипа",
		KeyMixNotCreated:      "Не удалось создать переход",
		KeyMoveRefused:        "Не удалось переместить клипы",
		KeyPosition:           "Позиция",
		KeyMonitorDefault:     "Монитор",
		KeyMonitorGeometry:    "Монитор: наложение геометрии",
		KeyTrackName:          "Имя дорожки",
		KeyVideo:              "Видео",
		KeyAudio:              "Аудио",
		KeySelection:          "Выбрано",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Framecut",
		KeyFile:               "Arquivo",
		KeyEdit:               "Editar",
		KeySettings:           "Configurações",
		KeyLanguage:           "Idioma",
		KeyRevealConfig:       "Abrir Pasta de Configuração",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyFrameRate:          "Taxa de Quadros",
		KeyTrackHeight:        "Altura da Faixa",
		KeyDefaultMixDuration: "Duração Padrão da Mixagem",
		KeyDefaultMixAlign:    "Alinhamento Padrão da Mixagem",
		KeyDuration:           "Duração:",
		KeyAlignLeft:          "Alinhar à esquerda",
		KeyAlignRight:         "Alinhar à direita",
		KeyAlignCenter:        "Centralizar",
		KeyHideTrack:          "Ocultar faixa",
		KeyMuteTrack:          "Silenciar faixa",
		KeyLockTrack:          "Bloquear faixa",
		KeyInsertTrack:        "Inserir Faixa",
		KeyDeleteTrack:        "Excluir Faixa",
		KeyConfigureTrack:     "Configurar Faixa",
		KeyAddTrack:           "Adicionar Faixa",
		KeyCreateMix:          "Criar Mixagem",
		KeyRemoveMix:          "Remover Mixagem",
		KeyNoMixSelected:      "Selecione um clipe com mixagem",
		KeySelectTwoClips:     "Selecione dois clipes adjacentes",
		KeyMixNotCreated:      "Não foi possível criar a mixagem",
		KeyMoveRefused:        "Não foi possível mover os clipes",
		KeyPosition:           "Posição",
		KeyMonitorDefault:     "Monitor",
		KeyMonitorGeometry:    "Monitor: sobreposição de geometria",
		KeyTrackName:          "Nome da faixa",
		KeyVideo:              "Vídeo",
		KeyAudio:              "Áudio",
		KeySelection:          "Selecionado",
	}
}
