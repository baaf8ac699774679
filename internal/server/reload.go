package server

// ReloadScript connects to /ws and reloads the page when the store
// changes. Build errors are shown in a banner until the next reload.
const ReloadScript = `(function () {
  'use strict';

  var retries = 0;

  function banner(text) {
    var el = document.getElementById('storecraft-error');
    if (!el) {
      el = document.createElement('div');
      el.id = 'storecraft-error';
      el.style.cssText = 'position:fixed;left:0;right:0;bottom:0;padding:12px 16px;background:#b91c1c;color:#fff;font:14px monospace;z-index:9999;white-space:pre-wrap';
      document.body.appendChild(el);
    }
    el.textContent = text;
  }

  function connect() {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var socket = new WebSocket(scheme + location.host + '/ws');

    socket.onopen = function () {
      retries = 0;
    };

    socket.onmessage = function (event) {
      var msg;
      try {
        msg = JSON.parse(event.data);
      } catch (e) {
        return;
      }
      if (msg.type === 'reload') {
        location.reload();
      } else if (msg.type === 'build_error') {
        banner(msg.content || 'Store failed to load');
      }
    };

    socket.onclose = function () {
      retries = Math.min(retries + 1, 10);
      setTimeout(connect, retries * 500);
    };
  }

  connect();
})();
`
