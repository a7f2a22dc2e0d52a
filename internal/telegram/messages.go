package telegram

import "fmt"

const (
	MsgGreeting = "Привет, друг, или как говорят у нас: «Монони губожя». Я гунажий бот для перевода твоего текста (или голосовухи) с русского на мой язык Джангалогу.\n\n" +
		"Отправь voice или текст — и получи перевод + озвучку."

	MsgSendVoiceOrText = "📎 Отправь текст или голосовое сообщение."

	MsgListening    = "Слышу. Распознаю речь…"
	MsgTranslating  = "Перевожу по словарю…"
	MsgSynthesizing = "Озвучиваю…"

	MsgBusy = "Сейчас обрабатываю другое сообщение. Пожалуйста, попробуйте ещё раз через минуту."

	MsgRecognizeFail = "Не удалось распознать речь. Попробуй говорить чуть громче/чище."

	MsgNothingTranslatedVoice = "Не получилось перевести на Джангалогу: в распознанном тексте не нашлось слов из словаря.\nПопробуйте переформулировать."
	MsgNothingTranslatedText  = "Не получилось перевести на Джангалогу: в тексте не нашлось слов из словаря.\nПопробуйте переформулировать."

	MsgVoiceSendFail = "Перевод готов, но озвучку отправить не удалось (ошибка синтеза или загрузки voice в Telegram).\nПопробуйте ещё раз чуть позже."

	MsgVoiceDownloadFail = "⚠️ Не удалось получить голосовое."
	MsgVoiceProcessFail  = "⚠️ Ошибка при обработке голосового."
)

func MsgVoiceTooLong(durationSec, maxSec int) string {
	return fmt.Sprintf(
		"Сообщение слишком длинное для обработки: %d сек.\nПожалуйста, сократите до %d сек или меньше.",
		durationSec, maxSec,
	)
}

func MsgTextTooLong(gotChars, maxChars int) string {
	return fmt.Sprintf(
		"Текст слишком длинный для обработки (%d символов).\nПожалуйста, сократите до %d символов или меньше.",
		gotChars, maxChars,
	)
}

func MsgTranscriptTooLong(gotChars, maxChars int) string {
	return fmt.Sprintf(
		"Распознанный текст слишком длинный для обработки (%d символов).\nПожалуйста, сократите сообщение до %d символов или меньше.",
		gotChars, maxChars,
	)
}

func MsgBusyWithTranslation(jgText string) string {
	return jgText + "\n\n(Озвучка: бот сейчас занят другим сообщением, попробуйте ещё раз через минуту.)"
}
