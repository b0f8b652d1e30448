package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyCheck             = "check"
	KeyDownload          = "download"
	KeyVideo             = "video"
	KeyAudio             = "audio"
	KeyQuality           = "quality"
	KeyFormat            = "format"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyVideoFormat       = "video_format"
	KeyAudioFormat       = "audio_format"
	KeyFFmpegPath        = "ffmpeg_path"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterURL          = "enter_url"
	KeySettingsSaved     = "settings_saved"
	KeyVideoInformation  = "video_information"
	KeyTitlePlaceholder  = "title_placeholder"
	KeyPlaylistEntries   = "playlist_entries"
	KeyDownloadCompleted = "download_completed"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyInvalidURL        = "invalid_url"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyToolMissingNotice = "tool_missing_notice"

	// Status line
	KeyStatusIdle           = "status_idle"
	KeyStatusFetching       = "status_fetching"
	KeyStatusSelectFormat   = "status_select_format"
	KeyStatusFetchError     = "status_fetch_error"
	KeyStatusThumbnailError = "status_thumbnail_error"
	KeyStatusPlaylistLoaded = "status_playlist_loaded"
	KeyStatusStarting       = "status_starting"
	KeyStatusDownloading    = "status_downloading"
	KeyStatusConverting     = "status_converting"
	KeyStatusCompleted      = "status_completed"
	KeyStatusDownloadFailed = "status_download_failed"

	// Error kinds
	KeyErrNoStreams     = "err_no_streams"
	KeyErrNoStreamFound = "err_no_stream_found"
	KeyErrToolMissing   = "err_tool_missing"
	KeyErrConversion    = "err_conversion"
	KeyErrMerge         = "err_merge"
	KeyErrNetwork       = "err_network"
	KeyErrNotFetched    = "err_not_fetched"
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
		KeyAppTitle:          "Gaan Downloader",
		KeyCheck:             "Check",
		KeyDownload:          "Download",
		KeyVideo:             "Video",
		KeyAudio:             "Audio",
		KeyQuality:           "Quality",
		KeyFormat:            "Format",
		KeyOpen:              "Open",
		KeyReveal:            "Reveal",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyVideoFormat:       "Default Video Format",
		KeyAudioFormat:       "Default Audio Format",
		KeyFFmpegPath:        "FFmpeg Command",
		KeyAutoReveal:        "Reveal file when done",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterURL:          "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyVideoInformation:  "Video Information",
		KeyTitlePlaceholder:  "Video title will appear here.",
		KeyPlaylistEntries:   "Playlist entries",
		KeyDownloadCompleted: "Download completed",
		KeyErrorOpeningFile:  "Error opening file",
		KeyInvalidURL:        "Invalid URL",
		KeyPleaseEnterURL:    "Please enter a valid YouTube URL.",
		KeyToolMissingNotice: "ffmpeg was not found. Downloads that need conversion will fail.",

		KeyStatusIdle:           "...",
		KeyStatusFetching:       "Fetching video information...",
		KeyStatusSelectFormat:   "Select your download format",
		KeyStatusFetchError:     "Error fetching info",
		KeyStatusThumbnailError: "Could not load thumbnail.",
		KeyStatusPlaylistLoaded: "Playlist loaded: %d videos. Pick one to check.",
		KeyStatusStarting:       "Starting download...",
		KeyStatusDownloading:    "Downloading... %d%%",
		KeyStatusConverting:     "Converting...",
		KeyStatusCompleted:      "Download completed successfully! 🎉",
		KeyStatusDownloadFailed: "Download failed",

		KeyErrNoStreams:     "No downloadable streams found for this video",
		KeyErrNoStreamFound: "The selected quality is not available",
		KeyErrToolMissing:   "FFmpeg not found. Please ensure it is installed and in your PATH.",
		KeyErrConversion:    "FFmpeg conversion failed",
		KeyErrMerge:         "FFmpeg merge failed",
		KeyErrNetwork:       "Network error",
		KeyErrNotFetched:    "Video information has not been fetched",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Gaan Загрузчик",
		KeyCheck:             "Проверить",
		KeyDownload:          "Скачать",
		KeyVideo:             "Видео",
		KeyAudio:             "Аудио",
		KeyQuality:           "Качество",
		KeyFormat:            "Формат",
		KeyOpen:              "Открыть",
		KeyReveal:            "Показать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyVideoFormat:       "Формат видео по умолчанию",
		KeyAudioFormat:       "Формат аудио по умолчанию",
		KeyFFmpegPath:        "Команда FFmpeg",
		KeyAutoReveal:        "Показать файл по завершении",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyEnterURL:          "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyVideoInformation:  "Информация о видео",
		KeyTitlePlaceholder:  "Здесь появится название видео.",
		KeyPlaylistEntries:   "Видео плейлиста",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyInvalidURL:        "Неверный URL",
		KeyPleaseEnterURL:    "Пожалуйста, введите корректный URL YouTube.",
		KeyToolMissingNotice: "ffmpeg не найден. Загрузки с конвертацией не будут работать.",

		KeyStatusIdle:           "...",
		KeyStatusFetching:       "Получение информации о видео...",
		KeyStatusSelectFormat:   "Выберите формат загрузки",
		KeyStatusFetchError:     "Ошибка получения информации",
		KeyStatusThumbnailError: "Не удалось загрузить превью.",
		KeyStatusPlaylistLoaded: "Плейлист загружен: %d видео. Выберите одно.",
		KeyStatusStarting:       "Начало загрузки...",
		KeyStatusDownloading:    "Загрузка... %d%%",
		KeyStatusConverting:     "Конвертация...",
		KeyStatusCompleted:      "Загрузка успешно завершена! 🎉",
		KeyStatusDownloadFailed: "Ошибка загрузки",

		KeyErrNoStreams:     "Для этого видео нет доступных потоков",
		KeyErrNoStreamFound: "Выбранное качество недоступно",
		KeyErrToolMissing:   "FFmpeg не найден. Убедитесь, что он установлен и доступен в PATH.",
		KeyErrConversion:    "Ошибка конвертации FFmpeg",
		KeyErrMerge:         "Ошибка объединения FFmpeg",
		KeyErrNetwork:       "Сетевая ошибка",
		KeyErrNotFetched:    "Информация о видео не получена",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Gaan Downloader",
		KeyCheck:             "Verificar",
		KeyDownload:          "Baixar",
		KeyVideo:             "Vídeo",
		KeyAudio:             "Áudio",
		KeyQuality:           "Qualidade",
		KeyFormat:            "Formato",
		KeyOpen:              "Abrir",
		KeyReveal:            "Mostrar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeyVideoFormat:       "Formato de Vídeo Padrão",
		KeyAudioFormat:       "Formato de Áudio Padrão",
		KeyFFmpegPath:        "Comando FFmpeg",
		KeyAutoReveal:        "Mostrar arquivo ao concluir",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyEnterURL:          "Digite URL do YouTube (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyVideoInformation:  "Informações do Vídeo",
		KeyTitlePlaceholder:  "O título do vídeo aparecerá aqui.",
		KeyPlaylistEntries:   "Vídeos da playlist",
		KeyDownloadCompleted: "Download concluído",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyInvalidURL:        "URL inválida",
		KeyPleaseEnterURL:    "Por favor, digite uma URL válida do YouTube.",
		KeyToolMissingNotice: "ffmpeg não encontrado. Downloads que precisam de conversão falharão.",

		KeyStatusIdle:           "...",
		KeyStatusFetching:       "Buscando informações do vídeo...",
		KeyStatusSelectFormat:   "Selecione o formato de download",
		KeyStatusFetchError:     "Erro ao buscar informações",
		KeyStatusThumbnailError: "Não foi possível carregar a miniatura.",
		KeyStatusPlaylistLoaded: "Playlist carregada: %d vídeos. Escolha um.",
		KeyStatusStarting:       "Iniciando download...",
		KeyStatusDownloading:    "Baixando... %d%%",
		KeyStatusConverting:     "Convertendo...",
		KeyStatusCompleted:      "Download concluído com sucesso! 🎉",
		KeyStatusDownloadFailed: "Falha no download",

		KeyErrNoStreams:     "Nenhum stream disponível para este vídeo",
		KeyErrNoStreamFound: "A qualidade selecionada não está disponível",
		KeyErrToolMissing:   "FFmpeg não encontrado. Verifique se está instalado e no PATH.",
		KeyErrConversion:    "Falha na conversão do FFmpeg",
		KeyErrMerge:         "Falha ao mesclar com FFmpeg",
		KeyErrNetwork:       "Erro de rede",
		KeyErrNotFetched:    "As informações do vídeo não foram obtidas",
	}
}
